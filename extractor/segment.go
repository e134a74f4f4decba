package extractor

import "strings"

// Sentence is a trimmed span of the transcript. Index preserves source order
// so later passes can look at the immediately preceding sentence. Lower is the
// lowercased text, computed once because every table lookup needs it.
type Sentence struct {
	Text  string
	Lower string
	Index int
}

// Sentences shorter than this after trimming are discarded as fragments.
const minSentenceLength = 4

// Segment splits a transcript into ordered sentences on terminal punctuation
// followed by whitespace. It is a total function: any input yields a valid
// (possibly empty) result, and a transcript with no terminal punctuation at
// all degrades to a single sentence holding the whole trimmed text.
func Segment(text string) []Sentence {
	sentences := make([]Sentence, 0, 8)

	appendSpan := func(span string) {
		span = strings.TrimSpace(span)
		if len(span) < minSentenceLength {
			return
		}
		sentences = append(sentences, Sentence{
			Text:  span,
			Lower: strings.ToLower(span),
			Index: len(sentences),
		})
	}

	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}

		// Swallow a run of terminal punctuation ("...", "?!").
		end := i + 1
		for end < len(text) && isTerminal(text[end]) {
			end++
		}

		// Only a boundary when followed by whitespace or end of input;
		// "3.5" and "a&e.uk" stay intact.
		if end < len(text) && !isSpace(text[end]) {
			i = end - 1
			continue
		}

		appendSpan(text[start:end])

		i = end
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		start = i
		i--
	}

	if start < len(text) {
		appendSpan(text[start:])
	}

	return sentences
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
