package extractor

import (
	"testing"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

func deref(t *testing.T, s *string) string {
	t.Helper()
	if s == nil {
		t.Fatal("expected a value, got nil")
	}
	return *s
}

func TestExtractDosage(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		sentence string
		want     string
	}{
		{"take 500 milligrams with water", "500 milligrams"},
		{"that's 2.5 ml every morning", "2.5 ml"},
		{"100mg should be plenty", "100mg"},
		{"use two puffs of the inhaler", ""},
		{"take 2 tablets at bedtime", "2 tablets"},
		{"no numbers here at all", ""},
	}

	for _, tt := range tests {
		got := extractDosage(lex, tt.sentence)
		if tt.want == "" {
			if got != nil {
				t.Errorf("extractDosage(%q) = %q, want nil", tt.sentence, *got)
			}
			continue
		}
		if deref(t, got) != tt.want {
			t.Errorf("extractDosage(%q) = %q, want %q", tt.sentence, *got, tt.want)
		}
	}
}

func TestExtractFrequency(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"fixed phrase", "take it twice a day please", "twice a day"},
		{"parametric pattern", "one dose every 6 hours", "every 6 hours"},
		{"numeric times a day", "so that's 3 times a day", "3 times a day"},
		{"phrase beats pattern regardless of position", "every 4 hours, so twice a day overall", "twice a day"},
		{"no frequency", "just when you remember", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFrequency(lex, tt.sentence)
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %q, want nil", *got)
				}
				return
			}
			if deref(t, got) != tt.want {
				t.Errorf("got %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		sentence string
		want     string
	}{
		{"keep going for 7 days", "for 7 days"},
		{"keep going for seven days", "for seven days"},
		{"carry on for a week or so", "for a week"},
		{"until the course is finished", "until the course is finished"},
		{"you'll be on this long term", "long term"},
		{"for as long as you like", ""},
	}

	for _, tt := range tests {
		got := extractDuration(lex, tt.sentence)
		if tt.want == "" {
			if got != nil {
				t.Errorf("extractDuration(%q) = %q, want nil", tt.sentence, *got)
			}
			continue
		}
		if deref(t, got) != tt.want {
			t.Errorf("extractDuration(%q) = %q, want %q", tt.sentence, *got, tt.want)
		}
	}
}

func TestExtractSpecialInstructions(t *testing.T) {
	lex := lexicon.Default()

	// "with or after food" precedes "with food" in the phrase list, so the
	// longer form wins when both are present.
	got := extractSpecialInstructions(lex, "take it with or after food")
	if deref(t, got) != "with or after food" {
		t.Errorf("got %q, want %q", *got, "with or after food")
	}

	got = extractSpecialInstructions(lex, "make sure you take it with food")
	if deref(t, got) != "with food" {
		t.Errorf("got %q, want %q", *got, "with food")
	}

	if got := extractSpecialInstructions(lex, "nothing special here"); got != nil {
		t.Errorf("got %q, want nil", *got)
	}
}

func TestExtractUrgency(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		sentence string
		want     string
	}{
		{"we need to get this done urgently", "urgently"},
		{"i'll mark it as urgent", "urgent"},
		{"pop in as soon as possible", "as soon as possible"},
		{"this is routine, nothing to rush", "routine"},
		{"whenever suits you", ""},
	}

	for _, tt := range tests {
		got := extractUrgency(lex, tt.sentence)
		if tt.want == "" {
			if got != nil {
				t.Errorf("extractUrgency(%q) = %q, want nil", tt.sentence, *got)
			}
			continue
		}
		if deref(t, got) != tt.want {
			t.Errorf("extractUrgency(%q) = %q, want %q", tt.sentence, *got, tt.want)
		}
	}
}

// The timeframe extractor keeps the last pattern in list order that matches,
// unlike every other field extractor.
func TestExtractTimeframeLastWins(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"single match", "come back in two weeks", "in two weeks"},
		{"later pattern overrides earlier", "within two weeks, ideally next monday", "next monday"},
		{"tomorrow overrides a few days", "come in a few days or even tomorrow", "tomorrow"},
		{"numeric form", "see me in 3 days", "in 3 days"},
		{"no timeframe", "whenever you can manage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTimeframe(lex, tt.sentence)
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %q, want nil", *got)
				}
				return
			}
			if deref(t, got) != tt.want {
				t.Errorf("got %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestExtractLocationOrMethod(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"reception outranks phone", "ring the reception to book", "reception"},
		{"online", "you can book online", "online"},
		{"phone keywords", "give us a ring next week", "phone"},
		{"gp surgery", "come down to the clinic", "GP surgery"},
		{"nothing matches", "we'll sort it out somehow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractLocationOrMethod(lex, tt.sentence)
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %q, want nil", *got)
				}
				return
			}
			if deref(t, got) != tt.want {
				t.Errorf("got %q, want %q", *got, tt.want)
			}
		})
	}
}
