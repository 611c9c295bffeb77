package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cbr9/information-retrieval-twitter/internal/engine"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// Server is the HTTP server exposing the conjunctive query operation
// over a built engine, plus health and stats endpoints.
type Server struct {
	config types.ServerConfig
	engine *engine.Engine

	httpServer   *http.Server
	startTime    time.Time
	requestCount atomic.Uint64
}

// NewServer creates a new HTTP server over eng.
func NewServer(config types.ServerConfig, eng *engine.Engine) *Server {
	return &Server{
		config:    config,
		engine:    eng,
		startTime: time.Now(),
	}
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", s.handleQuery)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)

	handler := s.loggingMiddleware(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		log.Printf("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	s.requestCount.Add(1)

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var p QueryParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	rows, err := s.engine.Query(p.Terms)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{
			DocID:      uint64(row.ID),
			UserHandle: row.UserHandle,
			UserName:   row.UserName,
			Body:       row.Body,
		}
	}

	s.writeJSON(w, QueryResult{Results: results, TotalResults: len(results)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResult{
		Healthy:      true,
		Status:       "ok",
		UptimeMs:     time.Since(s.startTime).Milliseconds(),
		RequestCount: s.requestCount.Load(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.Stats()
	s.writeJSON(w, StatsResult{
		Documents: stats["documents"],
		Terms:     stats["terms"],
		BuildID:   s.engine.BuildID(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResult{Error: message})
}
