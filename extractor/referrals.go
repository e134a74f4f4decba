package extractor

import (
	"strings"

	"github.com/oakfield/consult-extractor/extractor/entities"
)

// extractTestsAndReferrals finds ordered tests and referrals. The first
// trigger-list hit in a sentence determines the type; urgency is recorded only
// when an urgency indicator co-occurs in the same sentence. ReasonIfStated is
// deliberately never populated: copying a reason the clinician didn't attach
// to the order would be inference, not extraction.
func (e *Extractor) extractTestsAndReferrals(sentences []Sentence) []entities.TestOrReferral {
	lex := e.lex
	out := make([]entities.TestOrReferral, 0, 2)
	seen := make(map[string]bool)

	for _, s := range sentences {
		for _, trigger := range lex.TestTriggers {
			if !strings.Contains(s.Lower, trigger.Phrase) {
				continue
			}

			key := strings.ToLower(trigger.Type)
			if !seen[key] {
				seen[key] = true
				out = append(out, entities.TestOrReferral{
					Type:          trigger.Type,
					Urgency:       extractUrgency(lex, s.Lower),
					VerbatimQuote: s.Text,
				})
			}
			break
		}
	}

	return out
}
