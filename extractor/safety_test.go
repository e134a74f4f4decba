package extractor

import (
	"testing"

	"github.com/oakfield/consult-extractor/extractor/lexicon"
)

func TestExtractSafetyWarnings(t *testing.T) {
	e := New(lexicon.Default())

	t.Run("trigger plus condition", func(t *testing.T) {
		got := e.extractSafetyWarnings(Segment("If you get a rash, stop and ring us."))
		if len(got) != 1 {
			t.Fatalf("got %d warnings, want 1: %#v", len(got), got)
		}
		if got[0].Warning != "If you get a rash, stop and ring us." {
			t.Errorf("Warning = %q, want the full sentence", got[0].Warning)
		}
		if got[0].Warning != got[0].VerbatimQuote {
			t.Errorf("Warning %q != VerbatimQuote %q", got[0].Warning, got[0].VerbatimQuote)
		}
	})

	t.Run("trigger without condition is not a warning", func(t *testing.T) {
		if got := e.extractSafetyWarnings(Segment("If you feel fine, just carry on as normal.")); len(got) != 0 {
			t.Fatalf("got %d warnings, want 0: %#v", len(got), got)
		}
	})

	t.Run("condition without trigger is not a warning", func(t *testing.T) {
		if got := e.extractSafetyWarnings(Segment("The swelling has gone right down.")); len(got) != 0 {
			t.Fatalf("got %d warnings, want 0: %#v", len(got), got)
		}
	})

	t.Run("emergency keyword qualifies on its own", func(t *testing.T) {
		got := e.extractSafetyWarnings(Segment("Go straight to A&E."))
		if len(got) != 1 {
			t.Fatalf("got %d warnings, want 1: %#v", len(got), got)
		}
		if got[0].Warning != "Go straight to A&E." {
			t.Errorf("Warning = %q", got[0].Warning)
		}
	})

	t.Run("both paths on one sentence emit one warning", func(t *testing.T) {
		got := e.extractSafetyWarnings(Segment("If you develop any chest pain, go straight to A&E."))
		if len(got) != 1 {
			t.Fatalf("got %d warnings, want 1: %#v", len(got), got)
		}
		if got[0].Warning != "If you develop any chest pain, go straight to A&E." {
			t.Errorf("Warning = %q", got[0].Warning)
		}
	})

	t.Run("dedup by warning text", func(t *testing.T) {
		got := e.extractSafetyWarnings(Segment("Call 999 if there is any bleeding. Call 999 if there is any bleeding."))
		if len(got) != 1 {
			t.Fatalf("got %d warnings, want 1: %#v", len(got), got)
		}
	})
}
