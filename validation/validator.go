// Package validation guards the service surface: transcript and appointment
// identifier checks before a request reaches the extractor. The extractor
// itself is a total function over arbitrary strings; validation here bounds
// resource use and rejects obviously hostile input.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/oakfield/consult-extractor/interfaces"
)

// Compile-time check to ensure TranscriptValidatorImpl implements the interface
var _ interfaces.TranscriptValidator = (*TranscriptValidatorImpl)(nil)

// appointmentIDRegex: identifiers come from the booking system and are plain
// tokens, never free text.
var appointmentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// dangerousPatterns screens transcript payloads for markup and injection
// content a speech-to-text engine would never emit. strings.Contains over a
// short list beats regex here.
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "onerror=", "onload=",
	"union select", "drop table", "delete from", "insert into",
	"$(", "${", "`",
	"../", "..\\", "file://",
}

// TranscriptValidatorImpl implements interfaces.TranscriptValidator
type TranscriptValidatorImpl struct {
	maxTranscriptChars int
}

// NewTranscriptValidator creates a validator with the configured transcript
// length bound.
func NewTranscriptValidator(maxTranscriptChars int) interfaces.TranscriptValidator {
	return &TranscriptValidatorImpl{maxTranscriptChars: maxTranscriptChars}
}

// ValidateTranscript checks the transcript is non-empty, valid UTF-8, within
// the length bound and free of markup/injection content.
func (v *TranscriptValidatorImpl) ValidateTranscript(transcript string) error {
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("transcript cannot be empty")
	}

	if len(transcript) > v.maxTranscriptChars {
		return fmt.Errorf("transcript too long: %d characters, maximum is %d", len(transcript), v.maxTranscriptChars)
	}

	if !utf8.ValidString(transcript) {
		return fmt.Errorf("transcript is not valid UTF-8")
	}

	lower := strings.ToLower(transcript)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("transcript contains disallowed content")
		}
	}

	return nil
}

// ValidateAppointmentID checks the appointment identifier shape.
func (v *TranscriptValidatorImpl) ValidateAppointmentID(id string) error {
	if id == "" {
		return fmt.Errorf("appointment id cannot be empty")
	}

	if !appointmentIDRegex.MatchString(id) {
		return fmt.Errorf("appointment id must be 1-64 alphanumeric, dot, dash or underscore characters")
	}

	return nil
}
