// Package handlers provides HTTP request handlers for the extraction service:
// running extractions, fetching stored records, lexicon statistics and health.
package handlers

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oakfield/consult-extractor/extractor"
	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/interfaces"
	"github.com/oakfield/consult-extractor/logging"
	"github.com/oakfield/consult-extractor/metrics"
)

// Minimum response size to consider compression (1KB)
const compressionThreshold = 1024

// HTTPHandlerImpl bundles the injected dependencies behind the HTTP surface.
type HTTPHandlerImpl struct {
	lexicons      interfaces.LexiconStore
	results       interfaces.ResultStore
	validator     interfaces.TranscriptValidator
	healthChecker interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(lexicons interfaces.LexiconStore, results interfaces.ResultStore,
	validator interfaces.TranscriptValidator, healthChecker interfaces.HealthChecker) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		lexicons:      lexicons,
		results:       results,
		validator:     validator,
		healthChecker: healthChecker,
	}
}

// extractionRequest is the POST body for both extraction endpoints.
// AppointmentID is required only on the persisting endpoint.
type extractionRequest struct {
	AppointmentID            string `json:"appointment_id"`
	Transcript               string `json:"transcript"`
	RecordingDurationSeconds *int   `json:"recording_duration_seconds,omitempty"`
}

// CreateExtraction runs the pipeline and stores the record under the
// appointment identifier.
// POST /extractions
func (h *HTTPHandlerImpl) CreateExtraction(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	if err := h.validator.ValidateAppointmentID(req.AppointmentID); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, ok := h.runExtraction(w, req)
	if !ok {
		return
	}

	h.results.Save(req.AppointmentID, result)
	logging.Info("Extraction stored",
		"appointment_id", req.AppointmentID,
		"medications", len(result.Medications),
		"tests_and_referrals", len(result.TestsAndReferrals),
		"safety_warnings", len(result.SafetyWarnings),
	)

	RespondWithJSON(w, r, http.StatusCreated, result)
}

// ExtractTranscript runs the pipeline without persisting anything, for
// callers that own storage themselves.
// POST /extract
func (h *HTTPHandlerImpl) ExtractTranscript(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, ok := h.runExtraction(w, req)
	if !ok {
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// GetExtraction returns the stored record for an appointment.
// GET /extractions/{appointmentId}
func (h *HTTPHandlerImpl) GetExtraction(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentId")
	if err := h.validator.ValidateAppointmentID(appointmentID); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, found := h.results.Get(appointmentID)
	if !found {
		RespondWithError(w, http.StatusNotFound, "No extraction found for this appointment")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// LexiconStats reports the size of the loaded tables and refresh state.
// GET /lexicon
func (h *HTTPHandlerImpl) LexiconStats(w http.ResponseWriter, r *http.Request) {
	lex := h.lexicons.GetLexicon()
	if lex == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Lexicon not loaded")
		return
	}

	stats := map[string]any{
		"gazetteer_entries":   len(lex.Gazetteer),
		"misspelling_entries": len(lex.Misspellings),
		"medication_triggers": len(lex.MedicationTriggers),
		"test_triggers":       len(lex.TestTriggers),
		"follow_up_triggers":  len(lex.FollowUpTriggers),
		"safety_triggers":     len(lex.SafetyTriggers),
		"urgency_indicators":  len(lex.UrgencyIndicators),
		"last_updated":        h.lexicons.GetLastUpdated().Format(time.RFC3339),
		"is_updating":         h.lexicons.IsUpdating(),
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}

// HealthCheck returns service health.
// GET /health
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.healthChecker.HealthCheck()

	response := map[string]any{
		"status": status,
	}
	for k, v := range data {
		response[k] = v
	}

	RespondWithJSON(w, r, httpStatus, response)
}

func (h *HTTPHandlerImpl) decodeRequest(w http.ResponseWriter, r *http.Request) (extractionRequest, bool) {
	var req extractionRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			RespondWithError(w, http.StatusBadRequest, "Request body is required")
		} else {
			RespondWithError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		}
		return req, false
	}

	if err := h.validator.ValidateTranscript(req.Transcript); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}

	return req, true
}

// runExtraction grabs the current lexicon snapshot and runs the pipeline
// against it. The snapshot stays valid even if a refresh lands mid-call.
func (h *HTTPHandlerImpl) runExtraction(w http.ResponseWriter, req extractionRequest) (entities.ExtractionResult, bool) {
	lex := h.lexicons.GetLexicon()
	if lex == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Lexicon not loaded yet, try again shortly")
		return entities.ExtractionResult{}, false
	}

	start := time.Now()
	result := extractor.New(lex).Extract(req.Transcript, req.RecordingDurationSeconds)

	metrics.ObserveExtraction(time.Since(start),
		len(result.Medications),
		len(result.TestsAndReferrals),
		len(result.SafetyWarnings),
		len(result.AdditionalNotes),
		result.FollowUp != nil,
	)

	return result, true
}

// RespondWithJSON writes a JSON response, gzip-compressed when the payload is
// large enough and the client accepts it.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	shouldCompress := len(data) >= compressionThreshold &&
		strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip")

	if shouldCompress {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(code)
		gz := gzip.NewWriter(w)
		defer gz.Close()
		if _, err := gz.Write(data); err != nil {
			logging.Error("Failed to write compressed response", "error", err)
		}
		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Error("Failed to write response", "error", err)
	}
}

// RespondWithError writes a JSON error response.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	jsonResponse, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonResponse); err != nil {
		logging.Error("Failed to write error response", "error", err)
	}
}
