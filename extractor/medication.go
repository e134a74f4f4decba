package extractor

import (
	"strings"

	"github.com/oakfield/consult-extractor/extractor/entities"
	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// extractMedications runs the two-pass medication extraction.
//
// Pass 1 visits every sentence carrying a medication trigger phrase and
// resolves a gazetteer name in it. A trigger sentence with no resolvable name
// is treated as a continuation of the most recent instruction ("Make sure you
// take it with food") and fills in any fields that sentence states and the
// instruction still lacks.
//
// Pass 2 recovers medications whose trigger verb sits in the previous sentence
// from the drug mention: any sentence resolving a name not yet recorded is
// included if it states a dosage or frequency itself, or if the sentence
// before it carried a medication trigger.
//
// Deduplication is by case-insensitive medicine name, first occurrence kept.
func (e *Extractor) extractMedications(sentences []Sentence) []entities.MedicationInstruction {
	lex := e.lex
	out := make([]entities.MedicationInstruction, 0, 2)
	seen := make(map[string]bool)

	for _, s := range sentences {
		if !containsAny(s.Lower, lex.MedicationTriggers) {
			continue
		}

		name, ok := e.findMedicationName(s.Lower)
		if !ok {
			if len(out) > 0 {
				fillMissingFields(&out[len(out)-1], lex, s.Lower)
			}
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, buildInstruction(lex, name, s))
	}

	for i, s := range sentences {
		name, ok := e.findMedicationName(s.Lower)
		if !ok {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}

		hasField := extractDosage(lex, s.Lower) != nil || extractFrequency(lex, s.Lower) != nil
		prevTriggered := i > 0 && containsAny(sentences[i-1].Lower, lex.MedicationTriggers)
		if !hasField && !prevTriggered {
			continue
		}

		seen[key] = true
		out = append(out, buildInstruction(lex, name, s))
	}

	return out
}

func buildInstruction(lex *lexicon.Lexicon, name string, s Sentence) entities.MedicationInstruction {
	return entities.MedicationInstruction{
		MedicineName:        name,
		Dosage:              extractDosage(lex, s.Lower),
		Frequency:           extractFrequency(lex, s.Lower),
		Duration:            extractDuration(lex, s.Lower),
		SpecialInstructions: extractSpecialInstructions(lex, s.Lower),
		VerbatimQuote:       s.Text,
	}
}

// fillMissingFields copies fields stated by a continuation sentence onto an
// instruction, never overwriting anything already captured.
func fillMissingFields(instr *entities.MedicationInstruction, lex *lexicon.Lexicon, lower string) {
	if instr.Dosage == nil {
		instr.Dosage = extractDosage(lex, lower)
	}
	if instr.Frequency == nil {
		instr.Frequency = extractFrequency(lex, lower)
	}
	if instr.Duration == nil {
		instr.Duration = extractDuration(lex, lower)
	}
	if instr.SpecialInstructions == nil {
		instr.SpecialInstructions = extractSpecialInstructions(lex, lower)
	}
}
