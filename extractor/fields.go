package extractor

import (
	"regexp"
	"strings"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// Field extractors are pure functions over one lowercased sentence. Each
// returns the first entry of its ordered list that matches, or nil; there is
// no scoring and no reconciliation of multiple matches. The follow-up
// timeframe is the single deliberate exception (see extractTimeframe).

func extractDosage(lex *lexicon.Lexicon, lower string) *string {
	if m := lex.DosagePattern.FindString(lower); m != "" {
		return opt(m)
	}
	return nil
}

func extractFrequency(lex *lexicon.Lexicon, lower string) *string {
	// Fixed phrases before parametric patterns.
	for _, phrase := range lex.FrequencyPhrases {
		if strings.Contains(lower, phrase) {
			return opt(phrase)
		}
	}
	return firstPatternMatch(lex.FrequencyPatterns, lower)
}

func extractDuration(lex *lexicon.Lexicon, lower string) *string {
	return firstPatternMatch(lex.DurationPatterns, lower)
}

func extractSpecialInstructions(lex *lexicon.Lexicon, lower string) *string {
	for _, phrase := range lex.SpecialInstructionPhrases {
		if strings.Contains(lower, phrase) {
			return opt(phrase)
		}
	}
	return nil
}

func extractUrgency(lex *lexicon.Lexicon, lower string) *string {
	for _, indicator := range lex.UrgencyIndicators {
		if strings.Contains(lower, indicator) {
			return opt(indicator)
		}
	}
	return nil
}

// extractTimeframe keeps the LAST matching pattern in list order, not the
// first. This asymmetry with every other extractor is a preserved policy, not
// an accident; do not copy it into new field extractors.
func extractTimeframe(lex *lexicon.Lexicon, lower string) *string {
	var timeframe *string
	for _, re := range lex.TimeframePatterns {
		if m := re.FindString(lower); m != "" {
			timeframe = opt(m)
		}
	}
	return timeframe
}

func extractLocationOrMethod(lex *lexicon.Lexicon, lower string) *string {
	for _, rule := range lex.LocationCascade {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return opt(rule.Label)
			}
		}
	}
	return nil
}

func firstPatternMatch(patterns []*regexp.Regexp, lower string) *string {
	for _, re := range patterns {
		if m := re.FindString(lower); m != "" {
			return opt(m)
		}
	}
	return nil
}

func containsAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func opt(s string) *string {
	return &s
}
