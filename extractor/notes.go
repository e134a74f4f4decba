package extractor

import (
	"strings"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// maxAdditionalNotes caps advisory notes to keep downstream presentation
// readable on a noisy transcript.
const maxAdditionalNotes = 5

// extractAdditionalNotes collects lifestyle and reassurance sentences that no
// other category claimed. A sentence is excluded when it carries any other
// category's trigger phrase or when it already appears as a verbatim quote
// (medication recovery can claim trigger-less sentences, so the trigger check
// alone would not keep categories disjoint). Results keep source order.
func (e *Extractor) extractAdditionalNotes(sentences []Sentence, usedQuotes map[string]bool) []string {
	lex := e.lex
	out := make([]string, 0, maxAdditionalNotes)

	for _, s := range sentences {
		if len(out) == maxAdditionalNotes {
			break
		}

		if !containsAny(s.Lower, lex.LifestyleKeywords) && !containsAny(s.Lower, lex.ReassuranceKeywords) {
			continue
		}

		if containsAny(s.Lower, lex.MedicationTriggers) ||
			containsAny(s.Lower, lex.FollowUpTriggers) ||
			containsAny(s.Lower, lex.SafetyTriggers) ||
			containsAny(s.Lower, lex.EmergencyKeywords) ||
			hasTestTrigger(lex, s.Lower) ||
			usedQuotes[s.Text] {
			continue
		}

		out = append(out, s.Text)
	}

	return out
}

func hasTestTrigger(lex *lexicon.Lexicon, lower string) bool {
	for _, trigger := range lex.TestTriggers {
		if strings.Contains(lower, trigger.Phrase) {
			return true
		}
	}
	return false
}
