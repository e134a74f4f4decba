// Package entities defines the typed extraction record produced from a
// consultation transcript. Optional fields are pointers: nil means the phrase
// was never spoken, which is a different fact from an empty value.
package entities

import "time"

// MedicationInstruction is one prescribed or discussed medication.
// MedicineName always comes from the gazetteer, never freeform text.
type MedicationInstruction struct {
	MedicineName        string  `json:"medicine_name"`
	Dosage              *string `json:"dosage,omitempty"`
	Frequency           *string `json:"frequency,omitempty"`
	Duration            *string `json:"duration,omitempty"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
	VerbatimQuote       string  `json:"verbatim_quote"`
}

// TestOrReferral is an ordered test or a referral to another service.
// ReasonIfStated is carried in the schema but never populated: the extractor
// copies spoken phrases and does not infer a clinical reason.
type TestOrReferral struct {
	Type           string  `json:"type"`
	ReasonIfStated *string `json:"reason_if_stated,omitempty"`
	Urgency        *string `json:"urgency,omitempty"`
	VerbatimQuote  string  `json:"verbatim_quote"`
}

// FollowUpInstruction records the single follow-up plan of a consultation.
type FollowUpInstruction struct {
	Required         bool    `json:"required"`
	Timeframe        *string `json:"timeframe,omitempty"`
	LocationOrMethod *string `json:"location_or_method,omitempty"`
	VerbatimQuote    string  `json:"verbatim_quote"`
}

// SafetyWarning is a red-flag instruction, kept as the full spoken sentence.
type SafetyWarning struct {
	Warning       string `json:"warning"`
	VerbatimQuote string `json:"verbatim_quote"`
}

// ExtractionResult aggregates everything extracted from one transcript.
// It is created fresh on every extraction and never mutated afterwards.
type ExtractionResult struct {
	ID                       string                  `json:"id"`
	Medications              []MedicationInstruction `json:"medications"`
	TestsAndReferrals        []TestOrReferral        `json:"tests_and_referrals"`
	FollowUp                 *FollowUpInstruction    `json:"follow_up,omitempty"`
	SafetyWarnings           []SafetyWarning         `json:"safety_warnings"`
	AdditionalNotes          []string                `json:"additional_notes"`
	RecordingDurationSeconds *int                    `json:"recording_duration_seconds,omitempty"`
	ExtractedAt              time.Time               `json:"extracted_at"`
}
