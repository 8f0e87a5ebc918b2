package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadEntriesYAML verifies YAML entries files load with mixed shapes.
func TestLoadEntriesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - ["Is the sky blue?", true]
  - question: "Do fish live on land?"
    answer: false
  - ["broken", true, 3]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	items := Ingest(entries)
	if !items[0].Valid() || !items[1].Valid() {
		t.Fatalf("expected first two entries to be valid: %+v", items)
	}
	if items[1].Question.Text != "Do fish live on land?" || items[1].Question.Expected {
		t.Fatalf("unexpected mapping entry: %+v", items[1].Question)
	}
	if items[2].Valid() {
		t.Fatalf("expected third entry to be invalid")
	}
	if items[2].Invalid.Raw != `["broken",true,3]` {
		t.Fatalf("unexpected raw rendering %q", items[2].Invalid.Raw)
	}
}

// TestLoadEntriesJSON verifies JSON entries files are parsed.
func TestLoadEntriesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	payload := `{
  "version": 1,
  "questions": [
    ["Is water wet?", true],
    {"question": "Is fire cold?", "answer": false}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	items := Ingest(entries)
	if len(items) != 2 || !items[0].Valid() || !items[1].Valid() {
		t.Fatalf("unexpected items: %+v", items)
	}
	if !items[0].Question.Expected {
		t.Fatalf("expected first answer to be true")
	}
}

// TestLoadEntriesValidationErrors verifies envelope problems are reported.
func TestLoadEntriesValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := LoadEntries(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected version and questions issues, got %+v", validationErr.Issues)
	}
}

// TestLoadEntriesRejectsUnknownFields verifies strict decoding.
func TestLoadEntriesRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	if err := os.WriteFile(path, []byte("version: 1\nquestions: []\nextra: true\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadEntries(path); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}
