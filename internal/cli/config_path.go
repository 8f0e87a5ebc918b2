package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"yesnoquiz/internal/config"
	"yesnoquiz/internal/spec"
)

// resolveQuizPath normalizes a quiz path or finds it from CWD.
func resolveQuizPath(quizPath string) (string, error) {
	if strings.TrimSpace(quizPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(quizPath)
	if err != nil {
		return "", fmt.Errorf("resolve quiz path: %w", err)
	}
	return abs, nil
}

// loadQuiz loads the quiz at quizPath, or the discovered quiz file. When no
// path was given and none is found, the built-in quiz is used.
func loadQuiz(quizPath string, stderr io.Writer) (spec.Config, error) {
	resolved, err := resolveQuizPath(quizPath)
	if err != nil {
		if strings.TrimSpace(quizPath) == "" && errors.Is(err, config.ErrConfigNotFound) {
			fmt.Fprintln(stderr, "No quiz file found; using the built-in quiz. Run \"yesnoquiz init\" to create one.")
			return config.Default(), nil
		}
		return spec.Config{}, err
	}
	return config.Load(resolved)
}
