// Package lexicon builds the frozen keyword and pattern tables that drive
// transcript extraction: the medication gazetteer, per-category trigger
// phrases, urgency indicators and the ordered, precompiled pattern lists.
//
// A Lexicon is immutable once built and safe to share across any number of
// concurrent extractions. Refreshing means building a new Lexicon and swapping
// it in atomically; the old snapshot stays valid for in-flight calls.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"
)

// Misspelling maps one known transcription error to its canonical gazetteer
// name. Both sides are stored lowercase with whitespace removed, the same
// normalization the matcher applies to sentences.
type Misspelling struct {
	Wrong     string
	Canonical string
}

// TestTrigger binds a spoken trigger phrase to the canonical type recorded on
// the resulting TestOrReferral.
type TestTrigger struct {
	Phrase string
	Type   string
}

// LocationRule is one step of the follow-up location cascade. The first rule
// whose keyword appears in the sentence wins.
type LocationRule struct {
	Keywords []string
	Label    string
}

// Lexicon holds every table the extractor consults. All slices are in matching
// order: iteration order is the documented tie-break for every lookup.
type Lexicon struct {
	// Gazetteer entries, lowercase, in match-priority order.
	Gazetteer []string
	// Misspellings checked before fuzzy scoring, in order.
	Misspellings []Misspelling

	MedicationTriggers  []string
	TestTriggers        []TestTrigger
	FollowUpTriggers    []string
	SafetyTriggers      []string
	SafetyConditions    []string
	EmergencyKeywords   []string
	LifestyleKeywords   []string
	ReassuranceKeywords []string
	UrgencyIndicators   []string

	DosagePattern             *regexp.Regexp
	FrequencyPhrases          []string
	FrequencyPatterns         []*regexp.Regexp
	DurationPatterns          []*regexp.Regexp
	SpecialInstructionPhrases []string
	TimeframePatterns         []*regexp.Regexp
	LocationCascade           []LocationRule
}

// Default builds a Lexicon from the built-in tables.
func Default() *Lexicon {
	lex, err := build(nil, nil)
	if err != nil {
		// Built-in tables are compiled into the binary; failing to build them
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return lex
}

// Load builds a Lexicon from the built-in tables plus any overlay files found
// in dir. An empty dir means built-ins only.
func Load(dir string) (*Lexicon, error) {
	if dir == "" {
		return Default(), nil
	}
	extraNames, extraMisspellings, err := readOverlay(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon overlay: %w", err)
	}
	return build(extraNames, extraMisspellings)
}

func build(extraNames []string, extraMisspellings []Misspelling) (*Lexicon, error) {
	lex := &Lexicon{
		MedicationTriggers:  defaultMedicationTriggers,
		TestTriggers:        defaultTestTriggers,
		FollowUpTriggers:    defaultFollowUpTriggers,
		SafetyTriggers:      defaultSafetyTriggers,
		SafetyConditions:    defaultSafetyConditions,
		EmergencyKeywords:   defaultEmergencyKeywords,
		LifestyleKeywords:   defaultLifestyleKeywords,
		ReassuranceKeywords: defaultReassuranceKeywords,
		UrgencyIndicators:   defaultUrgencyIndicators,

		FrequencyPhrases:          defaultFrequencyPhrases,
		SpecialInstructionPhrases: defaultSpecialInstructionPhrases,
		LocationCascade:           defaultLocationCascade,
	}

	// Gazetteer: built-ins first, overlay entries after, duplicates dropped.
	seen := make(map[string]bool)
	for _, name := range defaultGazetteer {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		lex.Gazetteer = append(lex.Gazetteer, name)
	}
	for _, name := range extraNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		lex.Gazetteer = append(lex.Gazetteer, name)
	}

	lex.Misspellings = append(lex.Misspellings, defaultMisspellings...)
	lex.Misspellings = append(lex.Misspellings, extraMisspellings...)
	for i, m := range lex.Misspellings {
		lex.Misspellings[i].Wrong = squash(m.Wrong)
		lex.Misspellings[i].Canonical = strings.ToLower(strings.TrimSpace(m.Canonical))
	}

	var err error
	if lex.DosagePattern, err = regexp.Compile(dosagePattern); err != nil {
		return nil, fmt.Errorf("invalid dosage pattern: %w", err)
	}
	if lex.FrequencyPatterns, err = compileAll(frequencyPatterns); err != nil {
		return nil, fmt.Errorf("invalid frequency pattern: %w", err)
	}
	if lex.DurationPatterns, err = compileAll(durationPatterns); err != nil {
		return nil, fmt.Errorf("invalid duration pattern: %w", err)
	}
	if lex.TimeframePatterns, err = compileAll(timeframePatterns); err != nil {
		return nil, fmt.Errorf("invalid timeframe pattern: %w", err)
	}

	return lex, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// CanonicalName returns the display form of a lowercase gazetteer entry.
func CanonicalName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// squash lowercases s and removes all whitespace.
func squash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
