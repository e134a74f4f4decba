package extractor

import (
	"strings"

	"github.com/oakfield/consult-extractor/extractor/entities"
)

// extractSafetyWarnings finds red-flag sentences. A sentence qualifies either
// by carrying both a safety trigger ("if you", "contact") and a condition word
// ("chest pain", "rash"), or by containing a hard emergency keyword (a&e, 999,
// ambulance) on its own. The whole sentence is kept as the warning: safety
// instructions lose meaning when cut down.
func (e *Extractor) extractSafetyWarnings(sentences []Sentence) []entities.SafetyWarning {
	lex := e.lex
	out := make([]entities.SafetyWarning, 0, 2)
	seen := make(map[string]bool)

	for _, s := range sentences {
		triggered := containsAny(s.Lower, lex.SafetyTriggers) && containsAny(s.Lower, lex.SafetyConditions)
		emergency := containsAny(s.Lower, lex.EmergencyKeywords)
		if !triggered && !emergency {
			continue
		}

		key := strings.ToLower(s.Text)
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, entities.SafetyWarning{
			Warning:       s.Text,
			VerbatimQuote: s.Text,
		})
	}

	return out
}
