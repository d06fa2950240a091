package markers

// Enrich computes status, confidence and the clinical weighting for a
// validated marker. Deterministic: the same marker always yields the
// same enrichment, byte for byte.
func Enrich(vm ValidatedMarker) EnrichedMarker {
	v := vm.Value
	status, conf := ComputeStatus(&v, vm.RefRange)
	a := Weigh(vm.Code, vm.Value, status)
	return EnrichedMarker{
		ValidatedMarker:        vm,
		Status:                 status,
		Confidence:             conf,
		Severity:               a.Severity,
		Urgency:                a.Urgency,
		RecommendedRecheckDays: a.RecommendedRecheckDays,
		ImmediateAttention:     a.ImmediateAttention,
		UIHints:                a.UIHints,
	}
}

// EnrichAll enriches markers in input order.
func EnrichAll(vms []ValidatedMarker) []EnrichedMarker {
	out := make([]EnrichedMarker, 0, len(vms))
	for _, vm := range vms {
		out = append(out, Enrich(vm))
	}
	return out
}
