//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
	"gopkg.in/yaml.v3"

	"yesnoquiz/internal/config"
)

// anEmptyWorkingDirectory moves the scenario into a fresh temp directory.
func (s *featureState) anEmptyWorkingDirectory() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "yesnoquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	s.quizPath = config.ConfigPath(dir)
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// aQuizWithTheseQuestions writes a quiz from a question | answer table.
func (s *featureState) aQuizWithTheseQuestions(table *godog.Table) error {
	questions := make([][]any, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 2 {
			return fmt.Errorf("row %d: expected question and answer cells", i)
		}
		answer := strings.TrimSpace(row.Cells[1].Value)
		questions = append(questions, []any{row.Cells[0].Value, answer == "yes"})
	}
	data, err := yaml.Marshal(map[string]any{
		"version":           1,
		"title":             "Feature Quiz",
		"description":       "Scenario quiz.",
		"countdown_seconds": 0,
		"questions":         questions,
	})
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	return s.writeQuiz(string(data))
}

// aQuizFileContaining writes the doc string as the quiz file.
func (s *featureState) aQuizFileContaining(body *godog.DocString) error {
	return s.writeQuiz(body.Content)
}

func (s *featureState) writeQuiz(body string) error {
	if err := s.anEmptyWorkingDirectory(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.quizPath), 0o755); err != nil {
		return fmt.Errorf("create quiz dir: %w", err)
	}
	if err := os.WriteFile(s.quizPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}

// theQuizFileExists asserts init wrote the quiz and that it loads.
func (s *featureState) theQuizFileExists() error {
	if _, err := config.Load(s.quizPath); err != nil {
		return fmt.Errorf("load quiz %s: %w", s.quizPath, err)
	}
	return nil
}
