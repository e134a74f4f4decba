// Package extractor turns a raw speech-to-text transcript of a consultation
// into a structured extraction record: medications, test and referral orders,
// the follow-up plan, safety warnings and advisory notes.
//
// The extractor is schema-guided and inference-free. It copies exact spoken
// phrases out of the transcript; anything the clinician did not say is absent
// from the record, never guessed. Extraction is a total function over
// arbitrary input: there is no error path, an uninformative transcript simply
// yields empty collections.
package extractor

import (
	"time"

	"github.com/google/uuid"

	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// Extractor runs the extraction pipeline against one immutable lexicon
// snapshot. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an Extractor bound to the given lexicon snapshot. The lexicon
// must be fully built before the first call; passing a nil lexicon is a
// programming error.
func New(lex *lexicon.Lexicon) *Extractor {
	if lex == nil {
		panic("extractor: nil lexicon")
	}
	return &Extractor{lex: lex}
}

// Extract runs the full pipeline over one transcript. recordingDurationSeconds
// is passed through into the record unmodified and unvalidated; nil means the
// caller didn't supply one. The extraction timestamp is the only non-pure
// element: two calls with the same transcript differ only in ID and timestamp.
func (e *Extractor) Extract(transcript string, recordingDurationSeconds *int) entities.ExtractionResult {
	sentences := Segment(transcript)

	medications := e.extractMedications(sentences)
	testsAndReferrals := e.extractTestsAndReferrals(sentences)
	followUp := e.extractFollowUp(sentences)
	safetyWarnings := e.extractSafetyWarnings(sentences)

	usedQuotes := make(map[string]bool)
	for _, m := range medications {
		usedQuotes[m.VerbatimQuote] = true
	}
	for _, t := range testsAndReferrals {
		usedQuotes[t.VerbatimQuote] = true
	}
	if followUp != nil {
		usedQuotes[followUp.VerbatimQuote] = true
	}
	for _, w := range safetyWarnings {
		usedQuotes[w.VerbatimQuote] = true
	}

	return entities.ExtractionResult{
		ID:                       uuid.NewString(),
		Medications:              medications,
		TestsAndReferrals:        testsAndReferrals,
		FollowUp:                 followUp,
		SafetyWarnings:           safetyWarnings,
		AdditionalNotes:          e.extractAdditionalNotes(sentences, usedQuotes),
		RecordingDurationSeconds: recordingDurationSeconds,
		ExtractedAt:              time.Now().UTC(),
	}
}
