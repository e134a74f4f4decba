package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Overlay files let a practice extend the built-in tables without a rebuild:
//
//	gazetteer.txt    one medication name per line
//	misspellings.txt one "wrong=canonical" pair per line
//
// Lines starting with '#' are comments. Missing files are fine; the built-in
// tables already cover the common formulary.

const (
	gazetteerFile    = "gazetteer.txt"
	misspellingsFile = "misspellings.txt"
)

func readOverlay(dir string) ([]string, []Misspelling, error) {
	names, err := readLines(filepath.Join(dir, gazetteerFile))
	if err != nil {
		return nil, nil, err
	}

	pairs, err := readLines(filepath.Join(dir, misspellingsFile))
	if err != nil {
		return nil, nil, err
	}

	var misspellings []Misspelling
	for _, line := range pairs {
		wrong, canonical, ok := strings.Cut(line, "=")
		if !ok {
			return nil, nil, fmt.Errorf("malformed misspelling line %q in %s", line, misspellingsFile)
		}
		misspellings = append(misspellings, Misspelling{
			Wrong:     strings.TrimSpace(wrong),
			Canonical: strings.TrimSpace(canonical),
		})
	}

	return names, misspellings, nil
}

// readLines reads a line-per-entry file, skipping blanks and comments.
// A missing file yields no entries. Files exported from legacy practice
// systems are sometimes ISO-8859-1, so non-UTF-8 content is decoded from that
// before scanning.
func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(raw) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		raw = decoded
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	return lines, nil
}
