// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/underwritehq/underwriter/internal/config"
	"github.com/underwritehq/underwriter/internal/export"
	"github.com/underwritehq/underwriter/internal/llm"
)

type mockProvider struct {
	response   string
	err        error
	calls      int
	lastPrompt string
	lastReq    llm.Request
}

func (m *mockProvider) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.calls++
	m.lastPrompt = req.Prompt
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string { return "mock" }

func newTestServer(t *testing.T, provider *mockProvider) *Server {
	t.Helper()
	exporter, err := export.NewExporter(t.TempDir())
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	cfg := &config.Config{
		Provider:        "local",
		Temperature:     config.DefaultTemperature,
		MaxOutputTokens: config.DefaultMaxOutputTokens,
	}
	srv, err := NewServer(provider, exporter, cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv.now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC)
	}
	return srv
}

func TestFormPageRendersDefaults(t *testing.T) {
	srv := newTestServer(t, &mockProvider{response: "x"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`name="applicant_name" value="John Doe"`,
		`name="credit_score" min="0" max="850"`,
		"Single-family home",
		"Generate Report",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("form page missing %q", want)
		}
	}
}

func TestSubmitFormGeneratesRenderedReportAndDocument(t *testing.T) {
	provider := &mockProvider{response: "## Report\n__Risk__: *low*, amount $320,000"}
	srv := newTestServer(t, provider)

	form := url.Values{}
	form.Set("applicant_name", "Jane Roe")
	form.Set("loan_amount_requested", "250000")
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<strong>Risk</strong>") {
		t.Fatalf("underscore bold not rendered: %s", body)
	}
	if strings.Contains(body, "<em>low</em>") {
		t.Fatal("asterisk emphasis should have been stripped before rendering")
	}
	if strings.Contains(body, "$320,000") {
		t.Fatal("dollar sign survived cleaning")
	}
	// the template URL-escapes the applicant name inside the query string
	if !strings.Contains(body, "/v1/report/download?file=") ||
		!strings.Contains(body, "_20240305_143009.docx") {
		t.Fatalf("download link missing: %s", body)
	}

	if provider.calls != 1 {
		t.Fatalf("expected one generation call, got %d", provider.calls)
	}
	if !strings.Contains(provider.lastPrompt, "Loan Amount Requested: 250000.0") {
		t.Fatal("submitted loan amount missing from prompt")
	}
	if !strings.Contains(provider.lastPrompt, "Rules for Assessment:") {
		t.Fatal("rulebook missing from prompt")
	}
	if provider.lastReq.Temperature != config.DefaultTemperature {
		t.Fatalf("unexpected temperature: %v", provider.lastReq.Temperature)
	}
	if provider.lastReq.MaxOutputTokens != config.DefaultMaxOutputTokens {
		t.Fatalf("unexpected max output tokens: %v", provider.lastReq.MaxOutputTokens)
	}
}

func TestSubmitFormValidationError(t *testing.T) {
	provider := &mockProvider{response: "x"}
	srv := newTestServer(t, provider)

	form := url.Values{}
	form.Set("applicant_name", "Jane Roe")
	form.Set("current_employer", "Acme Industries")
	form.Set("credit_score", "999")
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "credit_score") {
		t.Fatalf("validation message missing: %s", body)
	}
	// the re-rendered form keeps what the user typed
	if !strings.Contains(body, `value="Jane Roe"`) {
		t.Fatalf("submitted name lost on re-render: %s", body)
	}
	if !strings.Contains(body, `value="Acme Industries"`) {
		t.Fatalf("submitted employer lost on re-render: %s", body)
	}
	if provider.calls != 0 {
		t.Fatal("generation must not run for an invalid submission")
	}
}

func TestSubmitFormGenerationFailure(t *testing.T) {
	provider := &mockProvider{err: errors.New("rate limited")}
	srv := newTestServer(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	provider := &mockProvider{response: "Assessment: __approve__ for $250,000"}
	srv := newTestServer(t, provider)

	payload := map[string]interface{}{
		"fields": map[string]string{
			"applicant_name": "Jane Roe",
			"credit_score":   "640",
		},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/v1/report", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Report   string `json:"report"`
		HTML     string `json:"html"`
		Document string `json:"document"`
		Provider string `json:"provider"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Report != "Assessment: __approve__ for 250,000" {
		t.Fatalf("unexpected cleaned report: %q", resp.Report)
	}
	if resp.HTML != "Assessment: <strong>approve</strong> for 250,000" {
		t.Fatalf("unexpected html: %q", resp.HTML)
	}
	if resp.Document != "Underwriting_Report_Jane Roe_20240305_143009.docx" {
		t.Fatalf("unexpected document name: %q", resp.Document)
	}
	if resp.Provider != "mock" {
		t.Fatalf("unexpected provider: %q", resp.Provider)
	}
	if !strings.Contains(provider.lastPrompt, "Credit Score: 640") {
		t.Fatal("credit score missing from prompt")
	}
}

func TestReportJSONBadField(t *testing.T) {
	srv := newTestServer(t, &mockProvider{response: "x"})
	body := []byte(`{"fields":{"loan_type":"Balloon"}}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/report", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDownloadExportedDocument(t *testing.T) {
	provider := &mockProvider{response: "Risk is moderate."}
	srv := newTestServer(t, provider)

	form := url.Values{}
	form.Set("applicant_name", "Jane Roe")
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("submit failed: %d", rr.Code)
	}

	name := "Underwriting_Report_Jane Roe_20240305_143009.docx"
	dlReq := httptest.NewRequest(http.MethodGet, "/v1/report/download?file="+url.QueryEscape(name), nil)
	dlRR := httptest.NewRecorder()
	srv.ServeHTTP(dlRR, dlReq)

	if dlRR.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", dlRR.Code, dlRR.Body.String())
	}
	if ct := dlRR.Header().Get("Content-Type"); ct != export.MIMEType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(dlRR.Header().Get("Content-Disposition"), name) {
		t.Fatalf("disposition missing filename: %q", dlRR.Header().Get("Content-Disposition"))
	}
	if dlRR.Body.Len() == 0 {
		t.Fatal("expected document bytes")
	}
}

func TestDownloadRejectsMissingAndForeignFiles(t *testing.T) {
	srv := newTestServer(t, &mockProvider{response: "x"})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/report/download", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file param, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/report/download?file=nope.docx", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown document, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/report/download?file=secrets.txt", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-docx, got %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &mockProvider{response: "x"})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response: %d %q", rr.Code, rr.Body.String())
	}
}

func TestNewServerRequiresCollaborators(t *testing.T) {
	exporter, err := export.NewExporter(t.TempDir())
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	cfg := &config.Config{}
	cases := []struct {
		name     string
		provider llm.Provider
		exporter *export.Exporter
		cfg      *config.Config
	}{
		{"nil provider", nil, exporter, cfg},
		{"nil exporter", &mockProvider{}, nil, cfg},
		{"nil config", &mockProvider{}, exporter, nil},
	}
	for _, tc := range cases {
		if _, err := NewServer(tc.provider, tc.exporter, tc.cfg); err == nil {
			t.Fatalf("%s: expected constructor error", tc.name)
		}
	}
}
