package server

import (
	"log/slog"
	"net/http"

	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/pipeline"
)

// Server wires the HTTP surface to the processing pipeline.
type Server struct {
	cfg       common.ServerConfig
	logger    *slog.Logger
	parse     *pipeline.ParseStage
	summary   *pipeline.SummaryStage
	processor *pipeline.Processor
	limiter   *tokenBucket
}

func NewServer(cfg common.ServerConfig, logger *slog.Logger, parse *pipeline.ParseStage, summary *pipeline.SummaryStage, proc *pipeline.Processor) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		parse:     parse,
		summary:   summary,
		processor: proc,
		limiter:   newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst),
	}
}

// Routes builds the handler chain: request ID, logging, rate limit, mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/labs/parse", s.handleParse)
	mux.HandleFunc("/labs/upload", s.handleUpload)
	mux.HandleFunc("/nlp/summary", s.handleSummary)

	var h http.Handler = mux
	h = s.withRateLimit(h)
	h = s.withLogging(h)
	h = s.withRequestID(h)
	return h
}
