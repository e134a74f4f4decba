// Package data provides thread-safe storage for the lexicon snapshot and the
// in-memory extraction result store. The lexicon container uses atomic
// pointers for zero-downtime swaps when a refresh completes.
package data

import (
	"sync/atomic"
	"time"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
	"github.com/oakfield/consult-extractor/interfaces"
	"github.com/oakfield/consult-extractor/logging"
)

// Compile-time check to ensure LexiconContainer implements LexiconStore
var _ interfaces.LexiconStore = (*LexiconContainer)(nil)

// LexiconContainer holds the current lexicon snapshot behind an atomic pointer.
type LexiconContainer struct {
	lexicon         atomic.Value // *lexicon.Lexicon
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewLexiconContainer creates an empty container. GetLexicon returns nil until
// the first UpdateLexicon; callers are expected to perform the initial load
// before serving traffic.
func NewLexiconContainer() *LexiconContainer {
	lc := &LexiconContainer{}
	lc.lastUpdated.Store(time.Time{})
	lc.serverStartTime.Store(time.Time{})
	return lc
}

// GetLexicon returns the current lexicon snapshot, or nil before first load.
func (lc *LexiconContainer) GetLexicon() *lexicon.Lexicon {
	if v := lc.lexicon.Load(); v != nil {
		if lex, ok := v.(*lexicon.Lexicon); ok {
			return lex
		}
	}

	logging.Warn("Lexicon has not been loaded yet")
	return nil
}

// GetLastUpdated returns the timestamp of the last lexicon refresh.
func (lc *LexiconContainer) GetLastUpdated() time.Time {
	if v := lc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a lexicon refresh is currently in progress.
func (lc *LexiconContainer) IsUpdating() bool {
	return lc.updating.Load()
}

// SetServerStartTime sets the server start time.
func (lc *LexiconContainer) SetServerStartTime(startTime time.Time) {
	lc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time.
func (lc *LexiconContainer) GetServerStartTime() time.Time {
	if v := lc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateLexicon atomically swaps in a new lexicon snapshot.
func (lc *LexiconContainer) UpdateLexicon(lex *lexicon.Lexicon) {
	lc.lexicon.Store(lex)
	lc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a refresh. Returns false if another refresh
// is already in progress.
func (lc *LexiconContainer) BeginUpdate() bool {
	return lc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a refresh.
func (lc *LexiconContainer) EndUpdate() {
	lc.updating.Store(false)
}
