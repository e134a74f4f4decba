// Package interfaces defines core abstractions for the consultation extraction
// service to improve testability and separation of concerns.
package interfaces

import (
	"time"

	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// LexiconStore defines the contract for lexicon snapshot storage. It provides
// thread-safe access to the current lexicon with atomic swap semantics for
// zero-downtime refreshes: in-flight extractions keep the snapshot they
// started with.
type LexiconStore interface {
	// GetLexicon returns the current lexicon snapshot, or nil before the
	// first load completes.
	GetLexicon() *lexicon.Lexicon
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// UpdateLexicon atomically swaps in a freshly built lexicon.
	UpdateLexicon(lex *lexicon.Lexicon)
	BeginUpdate() bool
	EndUpdate()
}

// LexiconLoader defines the contract for building a fresh lexicon from the
// built-in tables plus any configured overlay files.
type LexiconLoader interface {
	Load() (*lexicon.Lexicon, error)
}

// ResultStore is the persistence collaborator contract: extraction records
// keyed by appointment identifier. The extractor itself never touches it; the
// HTTP layer hands completed records over. The document schema below this
// interface belongs to the implementation, not to the extractor.
type ResultStore interface {
	Save(appointmentID string, result entities.ExtractionResult)
	Get(appointmentID string) (entities.ExtractionResult, bool)
	Count() int
}

// Scheduler defines the contract for the lexicon refresh schedule and
// staleness monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// TranscriptValidator defines the contract for validating caller input before
// extraction. The extractor itself accepts arbitrary strings; validation here
// protects the service surface, not the algorithm.
type TranscriptValidator interface {
	ValidateTranscript(transcript string) error
	ValidateAppointmentID(id string) error
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	HealthCheck() (status string, data map[string]any, httpStatus int)
}
