package extractor

import (
	"testing"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

func TestExtractTestsAndReferrals(t *testing.T) {
	e := New(lexicon.Default())

	t.Run("basic order with no urgency", func(t *testing.T) {
		got := e.extractTestsAndReferrals(Segment("We'll arrange a blood test for you."))
		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1: %#v", len(got), got)
		}
		if got[0].Type != "blood test" {
			t.Errorf("Type = %q, want blood test", got[0].Type)
		}
		if got[0].Urgency != nil {
			t.Errorf("Urgency = %q, want nil", *got[0].Urgency)
		}
		if got[0].ReasonIfStated != nil {
			t.Errorf("ReasonIfStated = %q, must never be populated", *got[0].ReasonIfStated)
		}
	})

	t.Run("urgency co-occurring in the sentence", func(t *testing.T) {
		got := e.extractTestsAndReferrals(Segment("I want an urgent chest x-ray arranged."))
		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1: %#v", len(got), got)
		}
		if got[0].Type != "X-ray" {
			t.Errorf("Type = %q, want X-ray", got[0].Type)
		}
		if deref(t, got[0].Urgency) != "urgent" {
			t.Errorf("Urgency = %q, want urgent", *got[0].Urgency)
		}
	})

	t.Run("one type per sentence, first trigger wins", func(t *testing.T) {
		got := e.extractTestsAndReferrals(Segment("We'll do a blood test and a urine test on the same visit."))
		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1: %#v", len(got), got)
		}
		if got[0].Type != "blood test" {
			t.Errorf("Type = %q, want blood test", got[0].Type)
		}
	})

	t.Run("dedup by type across sentences", func(t *testing.T) {
		got := e.extractTestsAndReferrals(Segment("We'll take some bloods today. The blood test results come back Friday."))
		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1: %#v", len(got), got)
		}
		if got[0].VerbatimQuote != "We'll take some bloods today." {
			t.Errorf("kept quote %q, want the first occurrence", got[0].VerbatimQuote)
		}
	})

	t.Run("distinct types accumulate in order", func(t *testing.T) {
		got := e.extractTestsAndReferrals(Segment("We'll do a blood test first. Then I'm going to refer you to a specialist."))
		if len(got) != 2 {
			t.Fatalf("got %d entries, want 2: %#v", len(got), got)
		}
		if got[0].Type != "blood test" || got[1].Type != "referral" {
			t.Errorf("types = %q, %q", got[0].Type, got[1].Type)
		}
	})

	t.Run("no triggers", func(t *testing.T) {
		if got := e.extractTestsAndReferrals(Segment("You should feel better soon.")); len(got) != 0 {
			t.Fatalf("got %d entries, want 0: %#v", len(got), got)
		}
	})
}
