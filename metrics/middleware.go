package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics instruments HTTP requests with the route pattern as the path label,
// so /extractions/{appointmentId} stays one series per route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		HTTPRequestInFlight.Inc()
		defer HTTPRequestInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := chi.RouteContext(r.Context()).RoutePattern()

		HTTPRequestTotals.WithLabelValues(
			r.Method,
			path,
			fmt.Sprintf("%d", wrapped.statusCode),
		).Inc()

		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// ObserveExtraction records one pipeline run and its per-category item counts.
func ObserveExtraction(duration time.Duration, medications, testsAndReferrals, safetyWarnings, additionalNotes int, hasFollowUp bool) {
	ExtractionsTotal.Inc()
	ExtractionDuration.Observe(duration.Seconds())

	ExtractionItemsTotal.WithLabelValues("medications").Add(float64(medications))
	ExtractionItemsTotal.WithLabelValues("tests_and_referrals").Add(float64(testsAndReferrals))
	ExtractionItemsTotal.WithLabelValues("safety_warnings").Add(float64(safetyWarnings))
	ExtractionItemsTotal.WithLabelValues("additional_notes").Add(float64(additionalNotes))
	if hasFollowUp {
		ExtractionItemsTotal.WithLabelValues("follow_up").Inc()
	}
}
