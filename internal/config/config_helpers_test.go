package config

import (
	"os"
	"path/filepath"
	"testing"

	"yesnoquiz/internal/question"
	"yesnoquiz/internal/spec"
)

// validConfig returns a minimal quiz used by validation tests.
func validConfig() spec.Config {
	return spec.Config{
		Version:          1,
		Title:            "Quiz",
		Description:      "desc",
		CountdownSeconds: 0,
		Questions: []question.Entry{
			question.Pair("Is the sky blue?", true),
		},
	}
}

// writeFile writes a fixture file under dir and returns its path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
