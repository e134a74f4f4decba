// Package health reports service health from the state of the lexicon store.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/oakfield/consult-extractor/interfaces"
)

// Compile-time check to ensure HealthCheckerImpl implements HealthChecker
var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	lexicons interfaces.LexiconStore
	results  interfaces.ResultStore
}

// NewHealthChecker creates a health checker with injected dependencies
func NewHealthChecker(lexicons interfaces.LexiconStore, results interfaces.ResultStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		lexicons: lexicons,
		results:  results,
	}
}

// HealthCheck returns health status for the /health endpoint. The service is
// unhealthy without a lexicon (extraction cannot run at all) and degraded when
// the lexicon refresh has been failing for over two days.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	lex := h.lexicons.GetLexicon()
	lastUpdate := h.lexicons.GetLastUpdated()
	isUpdating := h.lexicons.IsUpdating()

	lexiconAge := time.Since(lastUpdate)

	switch {
	case lex == nil || len(lex.Gazetteer) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case lexiconAge > 48*time.Hour:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":       lastUpdate.Format(time.RFC3339),
		"lexicon_age_hours": math.Round(lexiconAge.Hours()*10) / 10,
		"is_updating":       isUpdating,
		"stored_results":    h.results.Count(),
	}
	if lex != nil {
		data["gazetteer_entries"] = len(lex.Gazetteer)
		data["misspelling_entries"] = len(lex.Misspellings)
	}

	return status, data, httpStatus
}
