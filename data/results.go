package data

import (
	"sync"

	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/interfaces"
)

// Compile-time check to ensure ResultContainer implements ResultStore
var _ interfaces.ResultStore = (*ResultContainer)(nil)

// ResultContainer is the in-memory persistence collaborator: extraction
// records keyed by appointment identifier. Saving the same appointment again
// replaces the record; a re-recorded consultation supersedes the old one.
type ResultContainer struct {
	mu      sync.RWMutex
	results map[string]entities.ExtractionResult
}

// NewResultContainer creates an empty result store.
func NewResultContainer() *ResultContainer {
	return &ResultContainer{
		results: make(map[string]entities.ExtractionResult),
	}
}

// Save stores a record under the appointment identifier.
func (rc *ResultContainer) Save(appointmentID string, result entities.ExtractionResult) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.results[appointmentID] = result
}

// Get returns the record for an appointment, if one exists.
func (rc *ResultContainer) Get(appointmentID string) (entities.ExtractionResult, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	result, ok := rc.results[appointmentID]
	return result, ok
}

// Count returns the number of stored records.
func (rc *ResultContainer) Count() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.results)
}
