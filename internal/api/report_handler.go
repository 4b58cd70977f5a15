// File path: internal/api/report_handler.go
package api

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/underwritehq/underwriter/internal/applicant"
	"github.com/underwritehq/underwriter/internal/common"
	"github.com/underwritehq/underwriter/internal/llm"
	"github.com/underwritehq/underwriter/internal/prompt"
	"github.com/underwritehq/underwriter/internal/report"
)

type resultPage struct {
	Applicant    string
	ReportHTML   template.HTML
	DocumentName string
}

// pipelineResult carries the outcome of one submission through the linear
// pipeline: prompt, generation, post-processing, export.
type pipelineResult struct {
	Record       applicant.Record
	Raw          string
	Cleaned      string
	HTML         string
	DocumentPath string
}

// runPipeline executes one submission end to end. Any step failure halts the
// sequence; there is no retry or rollback.
func (s *Server) runPipeline(r *http.Request, rec applicant.Record) (pipelineResult, int, error) {
	logger := common.Logger()
	result := pipelineResult{Record: rec}

	built := prompt.Build(rec)
	logger.Info("api: prompt assembled", "applicant", rec.Name, "prompt_length", len(built))

	raw, err := s.provider.Generate(r.Context(), llm.Request{
		Prompt:          built,
		Temperature:     s.cfg.Temperature,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
	})
	if err != nil {
		return result, http.StatusBadGateway, fmt.Errorf("generate report: %w", err)
	}
	result.Raw = raw
	result.Cleaned = report.Clean(raw)
	result.HTML = report.RenderHTML(result.Cleaned)

	path, err := s.exporter.Export(result.Cleaned, rec.Name, s.now())
	if err != nil {
		return result, http.StatusInternalServerError, fmt.Errorf("export report: %w", err)
	}
	result.DocumentPath = path
	logger.Info("api: report generated", "applicant", rec.Name, "document", filepath.Base(path))
	return result, http.StatusOK, nil
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if err := r.ParseForm(); err != nil {
		logger.Warn("api: form parse failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec, err := applicant.ParseForm(r.PostForm)
	if err != nil {
		logger.Warn("api: submission rejected", "error", err)
		// re-render with the submitted values so only the offending
		// field needs correction
		s.renderForm(w, rec, err.Error())
		return
	}

	result, status, err := s.runPipeline(r, rec)
	if err != nil {
		logger.Error("api: pipeline failed", "status", status, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	page := resultPage{
		Applicant:    rec.Name,
		ReportHTML:   template.HTML(result.HTML),
		DocumentName: filepath.Base(result.DocumentPath),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "result.html", page); err != nil {
		logger.Error("api: result template failed", "error", err)
	}
}

type reportRequest struct {
	Fields map[string]string `json:"fields"`
}

type reportResponse struct {
	Report   string `json:"report"`
	HTML     string `json:"html"`
	Document string `json:"document"`
	Provider string `json:"provider"`
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	values := url.Values{}
	for key, value := range req.Fields {
		values.Set(key, value)
	}
	rec, err := applicant.ParseForm(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, status, err := s.runPipeline(r, rec)
	if err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{
		Report:   result.Cleaned,
		HTML:     result.HTML,
		Document: filepath.Base(result.DocumentPath),
		Provider: s.provider.Name(),
	})
}
