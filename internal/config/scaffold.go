package config

import (
	"fmt"
	"os"
	"path/filepath"

	"yesnoquiz/internal/question"
	"yesnoquiz/internal/spec"
)

// Built-in quiz values used when no quiz file is found.
const (
	DefaultTitle       = "Welcome to My Quiz!"
	DefaultDescription = "Test your general knowledge with this simple yes/no quiz. Do your best!"
	DefaultCountdown   = 5
)

const defaultQuiz = `version: 1
title: "Welcome to My Quiz!"
description: "Test your general knowledge with this simple yes/no quiz. Do your best!"

# Seconds to count down before the first question. 0 skips the countdown.
countdown_seconds: 5

# Each entry is [question, answer] where answer is true for "yes" and false
# for "no". The mapping form {question: ..., answer: ...} works too.
questions:
  - ["Is the sky blue?", true]
  - ["Do fish live on land?", false]
`

// Default returns the built-in quiz.
func Default() spec.Config {
	return spec.Config{
		Version:          1,
		Title:            DefaultTitle,
		Description:      DefaultDescription,
		CountdownSeconds: DefaultCountdown,
		Questions: []question.Entry{
			question.Pair("Is the sky blue?", true),
			question.Pair("Do fish live on land?", false),
		},
	}
}

// Scaffold writes the default quiz file, refusing to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("quiz path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("quiz path %q is a directory", path)
		}
		return fmt.Errorf("quiz file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat quiz file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create quiz dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultQuiz), 0o644); err != nil {
		return fmt.Errorf("write quiz file: %w", err)
	}
	return nil
}
