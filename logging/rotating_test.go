package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC), "2026-W02"},
		{time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), "2026-W35"},
		// Jan 1st 2027 falls in the last ISO week of 2026.
		{time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC), "2026-W53"},
	}

	for _, tt := range tests {
		if got := weekKey(tt.date); got != tt.want {
			t.Errorf("weekKey(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	rl := NewRotatingLogger(t.TempDir(), 1, 1024)

	if got := rl.fileName("2026-W35", 0); got != "consult-2026-W35.log" {
		t.Errorf("fileName seq 0 = %q", got)
	}
	if got := rl.fileName("2026-W35", 3); got != "consult-2026-W35_03.log" {
		t.Errorf("fileName seq 3 = %q", got)
	}
}

func TestRotatingLoggerWritesAndRotatesOnSize(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 1, 100)

	line := []byte(strings.Repeat("a", 60) + "\n")
	if _, err := rl.Write(line); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	// Second write would push the file past the limit, forcing a rollover.
	if _, err := rl.Write(line); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("got %d log files, want 2: %v", len(entries), names)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), logFilePrefix) || !strings.HasSuffix(entry.Name(), ".log") {
			t.Errorf("unexpected file name %q", entry.Name())
		}
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 1, 1024)

	oldFile := filepath.Join(dir, "consult-2025-W01.log")
	if err := os.WriteFile(oldFile, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ancient := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(oldFile, ancient, ancient); err != nil {
		t.Fatal(err)
	}

	freshFile := filepath.Join(dir, "consult-2026-W35.log")
	if err := os.WriteFile(freshFile, []byte("fresh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// An unrelated file in the directory must never be touched.
	otherFile := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(otherFile, []byte("keep\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(otherFile, ancient, ancient); err != nil {
		t.Fatal(err)
	}

	if err := rl.cleanupOldLogs(); err != nil {
		t.Fatalf("cleanupOldLogs returned error: %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("expired log file was not removed")
	}
	if _, err := os.Stat(freshFile); err != nil {
		t.Error("fresh log file was removed")
	}
	if _, err := os.Stat(otherFile); err != nil {
		t.Error("unrelated file was removed")
	}
}

func TestSetupLoggerWritesJSONFile(t *testing.T) {
	dir := t.TempDir()

	logger := SetupLogger(dir, 1, 1024*1024)
	logger.Info("pipeline ready", "gazetteer_entries", 48)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d files in log dir, want 1", len(entries))
	}

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `"msg":"pipeline ready"`) {
		t.Errorf("log file does not contain the JSON record: %s", content)
	}
}
