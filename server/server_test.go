package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oakfield/consult-extractor/config"
	"github.com/oakfield/consult-extractor/data"
	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/extractor/lexicon"
	"github.com/oakfield/consult-extractor/handlers"
	"github.com/oakfield/consult-extractor/health"
	"github.com/oakfield/consult-extractor/logging"
	"github.com/oakfield/consult-extractor/validation"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logging.InitLogger(t.TempDir(), 1, 1024*1024)

	cfg := &config.Config{
		Port:               "8000",
		Address:            "127.0.0.1",
		Env:                "test",
		LogLevel:           "info",
		MaxRequestBody:     1024 * 1024,
		MaxHeaderSize:      1024 * 1024,
		MaxTranscriptChars: 100000,
	}

	lexicons := data.NewLexiconContainer()
	lexicons.UpdateLexicon(lexicon.Default())
	results := data.NewResultContainer()
	validator := validation.NewTranscriptValidator(cfg.MaxTranscriptChars)
	healthChecker := health.NewHealthChecker(lexicons, results)
	handler := handlers.NewHTTPHandler(lexicons, results, validator, healthChecker)

	return NewServer(cfg, handler)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/lexicon", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/extract", `{"transcript": "Take amoxicillin twice a day."}`, http.StatusOK},
		{http.MethodGet, "/extractions/APPT-404", "", http.StatusNotFound},
		{http.MethodGet, "/nonexistent", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rr := httptest.NewRecorder()
			srv.Router().ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}

// Store a record through the full middleware chain, then read it back.
func TestServerExtractionRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	body := `{"appointment_id": "APPT-42", "transcript": "Take amoxicillin 500 milligrams three times a day. Come back in two weeks."}`
	req := httptest.NewRequest(http.MethodPost, "/extractions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var created entities.ExtractionResult
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode POST response: %v", err)
	}

	rr = httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/extractions/APPT-42", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var fetched entities.ExtractionResult
	if err := json.NewDecoder(rr.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode GET response: %v", err)
	}

	if fetched.ID != created.ID {
		t.Errorf("fetched ID %q != created ID %q", fetched.ID, created.ID)
	}
	if len(fetched.Medications) != 1 || fetched.Medications[0].MedicineName != "Amoxicillin" {
		t.Errorf("medications = %#v", fetched.Medications)
	}
	if fetched.FollowUp == nil || fetched.FollowUp.Timeframe == nil || *fetched.FollowUp.Timeframe != "in two weeks" {
		t.Errorf("follow-up = %#v", fetched.FollowUp)
	}
}

func TestServerRateLimitHeadersPresent(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("X-RateLimit-Limit not set through the middleware chain")
	}
}
