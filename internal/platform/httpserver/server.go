package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	analyticsservice "founderops/contexts/founder-ops/analytics-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "founderops/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	founderOps analyticsservice.Module
}

func New(
	founderOps analyticsservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		founderOps: founderOps,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/founder-ops", s.handleGetFounderOps)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/founder-ops/velocity", s.handleGetVelocity)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/founder-ops/community", s.handleGetCommunity)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/founder-ops/fulfillment", s.handleGetFulfillment)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/founder-ops/reports", s.handleListReports)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_id}/founder-ops/reports", s.handleCreateReport)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
