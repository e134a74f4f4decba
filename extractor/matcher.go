package extractor

import (
	"strings"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

// Fuzzy matching bounds. Gazetteer entries shorter than fuzzyMinLength only
// ever match exactly or as normalized substrings: short names produce too many
// spurious high-similarity candidates.
const (
	fuzzyMinLength = 6
	fuzzyThreshold = 0.75
	boundaryBoost  = 0.10
)

// findMedicationName resolves a gazetteer medication name mentioned in the
// lowercased sentence, tolerating common speech-to-text noise (inserted
// spaces, phonetic misspellings). Gazetteer iteration order is the tie-break.
//
// Resolution order: exact substring, whitespace-normalized substring, the
// explicit misspelling map, then LCS-based fuzzy scoring.
func (e *Extractor) findMedicationName(lower string) (string, bool) {
	lex := e.lex

	for _, name := range lex.Gazetteer {
		if strings.Contains(lower, name) {
			return lexicon.CanonicalName(name), true
		}
	}

	norm := normalizeForMatch(lower)
	if norm == "" {
		return "", false
	}

	for _, name := range lex.Gazetteer {
		if strings.Contains(norm, strings.ReplaceAll(name, " ", "")) {
			return lexicon.CanonicalName(name), true
		}
	}

	for _, m := range lex.Misspellings {
		if m.Wrong != "" && strings.Contains(norm, m.Wrong) {
			return lexicon.CanonicalName(m.Canonical), true
		}
	}

	for _, name := range lex.Gazetteer {
		candidate := strings.ReplaceAll(name, " ", "")
		if len(candidate) < fuzzyMinLength {
			continue
		}
		if similarity(candidate, norm) >= fuzzyThreshold {
			return lexicon.CanonicalName(name), true
		}
	}

	return "", false
}

// normalizeForMatch strips leading articles and all whitespace, so "a
// moxosilin 500mg" collapses into a comparable token run.
func normalizeForMatch(lower string) string {
	fields := strings.Fields(lower)
	for len(fields) > 0 {
		switch fields[0] {
		case "a", "an", "the":
			fields = fields[1:]
		default:
			return strings.Join(fields, "")
		}
	}
	return ""
}

// similarity scores two strings in [0,1]. Base score is LCS length over the
// longer length, with a containment shortcut, plus a small boost when the
// strings share their first or last three characters (drug names tend to keep
// their prefix or suffix through transcription errors).
func similarity(a, b string) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(longer) == 0 {
		return 0
	}

	var score float64
	if strings.Contains(longer, shorter) {
		score = float64(len(shorter)) / float64(len(longer))
	} else {
		score = float64(lcsLength(shorter, longer)) / float64(len(longer))
	}

	if len(shorter) >= 3 {
		sameStart := shorter[:3] == longer[:3]
		sameEnd := shorter[len(shorter)-3:] == longer[len(longer)-3:]
		if sameStart || sameEnd {
			score += boundaryBoost
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// lcsLength computes the longest common subsequence length with the classic
// dynamic program, keeping only two rows of the table.
func lcsLength(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
