// File path: internal/api/server.go
package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/underwritehq/underwriter/internal/common"
	"github.com/underwritehq/underwriter/internal/config"
	"github.com/underwritehq/underwriter/internal/export"
	"github.com/underwritehq/underwriter/internal/llm"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the form surface, the generation pipeline, and the document
// download endpoint behind one router.
type Server struct {
	router    chi.Router
	provider  llm.Provider
	exporter  *export.Exporter
	cfg       *config.Config
	templates *template.Template

	// now is swappable in tests; production uses time.Now.
	now func() time.Time
}

func NewServer(provider llm.Provider, exporter *export.Exporter, cfg *config.Config) (*Server, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider required")
	}
	if exporter == nil {
		return nil, fmt.Errorf("exporter required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	srv := &Server{
		router:    chi.NewRouter(),
		provider:  provider,
		exporter:  exporter,
		cfg:       cfg,
		templates: templates,
		now:       time.Now,
	}
	srv.routes()
	common.Logger().Info("api: server ready", "provider", provider.Name())
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			next.ServeHTTP(w, r)
			logger.Debug("request", "id", requestID, "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/", s.handleForm)
	s.router.Post("/report", s.handleReport)
	s.router.Post("/v1/report", s.handleReportJSON)
	s.router.Get("/v1/report/download", s.handleDownload)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
