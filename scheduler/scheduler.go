// Package scheduler provides the lexicon refresh schedule and staleness
// monitoring. The lexicon rarely changes, but overlay files can be edited by
// practice staff, so a daily rebuild picks those up with zero downtime.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/oakfield/consult-extractor/interfaces"
	"github.com/oakfield/consult-extractor/logging"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles lexicon refreshes and staleness monitoring using
// dependency injection.
type Scheduler struct {
	lexicons  interfaces.LexiconStore
	loader    interfaces.LexiconLoader
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(lexicons interfaces.LexiconStore, loader interfaces.LexiconLoader) *Scheduler {
	return &Scheduler{
		lexicons:  lexicons,
		loader:    loader,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial lexicon load and schedules daily refreshes.
// The initial load is the one precondition of the whole service: extraction
// must never run against an absent lexicon, so failure here is returned as
// fatal rather than retried.
func (s *Scheduler) Start() error {
	if err := s.refresh(); err != nil {
		logging.Error("Failed to perform initial lexicon load", "error", err)
		return fmt.Errorf("initial lexicon load failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if err := s.refresh(); err != nil {
			logging.Error("Failed to refresh lexicon", "error", err)
		}
	})
	if err != nil {
		logging.Error("Failed to schedule lexicon refresh", "error", err)
		return fmt.Errorf("failed to schedule lexicon refresh: %w", err)
	}

	s.scheduler.StartAsync()
	s.startStalenessMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// refresh builds a fresh lexicon and swaps it in atomically.
func (s *Scheduler) refresh() error {
	if !s.lexicons.BeginUpdate() {
		logging.Info("Lexicon refresh already in progress, skipping...")
		return nil
	}
	defer s.lexicons.EndUpdate()

	start := time.Now()

	lex, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to build lexicon: %w", err)
	}

	s.lexicons.UpdateLexicon(lex)

	logging.Info("Lexicon refresh completed",
		"duration", time.Since(start).String(),
		"gazetteer_entries", len(lex.Gazetteer),
		"misspelling_entries", len(lex.Misspellings),
	)

	return nil
}

// startStalenessMonitoring warns when the daily refresh stops landing.
func (s *Scheduler) startStalenessMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.lexicons.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Lexicon hasn't been refreshed in over 25 hours")
			}
		}
	}()
}
