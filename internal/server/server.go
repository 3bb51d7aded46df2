// Package server exposes the intelligence pipeline over HTTP: intelligent
// search, suggestions, risk assessment, knowledge graph context, plus health
// and metrics endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arthik444/procheck/internal/common/config"
	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/intelligence/pipeline"
)

// Server wraps the HTTP listener and routes.
type Server struct {
	httpServer *http.Server
	pipeline   *pipeline.Service
	logger     logger.Logger
}

func New(cfg config.ServerConfig, svc *pipeline.Service, log logger.Logger) *Server {
	s := &Server{
		pipeline: svc,
		logger:   log.WithFields(map[string]interface{}{"component": "http-server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/protocols/intelligent-search", s.handleIntelligentSearch)
	mux.HandleFunc("POST /api/v1/protocols/medical-suggestions", s.handleSuggestions)
	mux.HandleFunc("POST /api/v1/clinical/risk-assessment", s.handleRiskAssessment)
	mux.HandleFunc("POST /api/v1/clinical/knowledge-graph", s.handleKnowledgeGraph)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}

	return s
}

// Handler returns the route handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks until the listener stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
