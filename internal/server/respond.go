package server

import (
	"encoding/json"
	"net/http"

	"github.com/vitalis-health/labparse/internal/common"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
	RID   string    `json:"rid"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the shared error shape {error:{code,message}, rid}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := common.AsAppError(err)
	writeJSON(w, common.HTTPStatus(ae.Code), errorEnvelope{
		Error: errorBody{Code: ae.Code, Message: ae.Message},
		RID:   common.RequestIDFromContext(r.Context()),
	})
}
