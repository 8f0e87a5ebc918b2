package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoQuestionQuiz = `version: 1
title: "Test Quiz"
description: "Two questions."
countdown_seconds: 0
questions:
  - ["Is the sky blue?", true]
  - {question: "Do fish live on land?", answer: false}
`

// writeQuiz writes body to .yesnoquiz/quiz.yml under dir and returns its path.
func writeQuiz(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".yesnoquiz", "quiz.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create quiz dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// cliResult captures one invocation of Run.
type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI invokes Run with stdin fed from input.
func runCLI(input string, args ...string) cliResult {
	var out, errOut bytes.Buffer
	code := Run(args, strings.NewReader(input), &out, &errOut)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}
