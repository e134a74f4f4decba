package extractor

import "github.com/oakfield/consult-extractor/extractor/entities"

// extractFollowUp returns the follow-up plan from the first sentence carrying
// a follow-up trigger, or nil. A consultation produces at most one follow-up
// instruction; later trigger sentences are ignored.
func (e *Extractor) extractFollowUp(sentences []Sentence) *entities.FollowUpInstruction {
	lex := e.lex

	for _, s := range sentences {
		if !containsAny(s.Lower, lex.FollowUpTriggers) {
			continue
		}

		return &entities.FollowUpInstruction{
			Required:         true,
			Timeframe:        extractTimeframe(lex, s.Lower),
			LocationOrMethod: extractLocationOrMethod(lex, s.Lower),
			VerbatimQuote:    s.Text,
		}
	}

	return nil
}
