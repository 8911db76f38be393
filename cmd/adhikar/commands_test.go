package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/openpaws/adhikar/internal/tracker"
)

// isolateXDG points config and data paths into temp dirs so tests never
// touch the real home directory.
func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestGenerateRequiresAgency(t *testing.T) {
	isolateXDG(t)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"rti", "generate"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing --agency")
	}
	if !strings.Contains(err.Error(), "--agency") {
		t.Errorf("error = %q, want it to mention --agency", err.Error())
	}
}

func TestGenerateRequiresQuestions(t *testing.T) {
	isolateXDG(t)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"rti", "generate", "--agency", "awbi"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing questions")
	}
	if !strings.Contains(err.Error(), "--question") {
		t.Errorf("error = %q, want it to mention --question", err.Error())
	}
}

func TestGenerateWritesLetter(t *testing.T) {
	isolateXDG(t)
	defer rootCmd.SetArgs(nil)

	out := filepath.Join(t.TempDir(), "letter.txt")
	rootCmd.SetArgs([]string{
		"rti", "generate",
		"--agency", "awbi",
		"--question", "Number of inspections conducted in 2025",
		"--name", "Test Applicant",
		"--address", "12 Test Lane",
		"--output", out,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading letter: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Right to Information Act") {
		t.Error("letter does not mention the Act")
	}
	if !strings.Contains(text, "Number of inspections conducted in 2025") {
		t.Error("letter does not contain the question")
	}
}

func TestPrebuiltUnknownKind(t *testing.T) {
	isolateXDG(t)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"rti", "prebuilt", "nonsense"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown prebuilt kind")
	}
}

func TestParseDateFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"2026-01-01", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"01/01/2026", time.Time{}, true},
		{"yesterday", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := parseDateFlag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDateFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseDateFlag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("12"); err != nil {
		t.Errorf("parseID(12) error = %v", err)
	}
	if _, err := parseID("twelve"); err == nil {
		t.Error("parseID(twelve) expected error")
	}
}

func TestSummaryLineTruncatesSubject(t *testing.T) {
	r := tracker.Record{
		ID:         3,
		AgencyCode: "fssai",
		Status:     tracker.StatusFiled,
		Subject:    strings.Repeat("x", 100),
		FilingDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	line := summaryLine(r)
	if !strings.Contains(line, "...") {
		t.Error("long subject was not truncated")
	}
	if !strings.Contains(line, "#3") {
		t.Error("line is missing the record id")
	}
	if !strings.Contains(line, "2026-01-01") {
		t.Error("line is missing the filing date")
	}
}

func TestSummaryLineTruncatesDevanagariOnRunes(t *testing.T) {
	r := tracker.Record{
		ID:         4,
		AgencyCode: "awbi",
		Status:     tracker.StatusFiled,
		Subject:    strings.Repeat("डेयरी", 20), // 100 runes, 300 bytes
		FilingDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	line := summaryLine(r)
	if !utf8.ValidString(line) {
		t.Errorf("truncation split a rune: %q", line)
	}
	if !strings.Contains(line, strings.Repeat("डेयरी", 12)+"...") {
		t.Errorf("subject not truncated at 60 runes: %q", line)
	}
}

func TestSaveDraftUniquePaths(t *testing.T) {
	dir := t.TempDir()
	a, err := saveDraft(dir, "first")
	if err != nil {
		t.Fatal(err)
	}
	b, err := saveDraft(dir, "second")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two drafts were saved to the same path")
	}
	data, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\n" {
		t.Errorf("draft content = %q, want %q", data, "first\n")
	}
}

func TestWriteDocumentToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := writeDocument(path, "hello"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("document = %q, want %q", data, "hello\n")
	}
}

func TestIndent(t *testing.T) {
	got := indent("a\nb\n", "  ")
	want := "  a\n  b\n"
	if got != want {
		t.Errorf("indent = %q, want %q", got, want)
	}
}

func TestStatusNamesListsLifecycle(t *testing.T) {
	names := statusNames()
	for _, want := range []string{"drafted", "filed", "first_appeal_filed", "closed"} {
		if !strings.Contains(names, want) {
			t.Errorf("statusNames() is missing %q", want)
		}
	}
}
