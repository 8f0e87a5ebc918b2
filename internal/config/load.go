package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"yesnoquiz/internal/question"
	"yesnoquiz/internal/spec"
)

// Load reads, parses, normalizes, and validates a quiz file. When the quiz
// references a questions_file its entries are loaded into Questions.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read quiz: %w", err)
	}
	cfg, err := parse(data, path)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	baseDir := filepath.Dir(path)
	if err := Validate(&cfg, baseDir); err != nil {
		return spec.Config{}, err
	}
	if cfg.QuestionsFile != "" {
		entries, err := question.LoadEntries(resolvePath(baseDir, cfg.QuestionsFile))
		if err != nil {
			return spec.Config{}, err
		}
		cfg.Questions = entries
	}
	return cfg, nil
}

func parse(data []byte, path string) (spec.Config, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return spec.ParseConfigJSON(data)
	}
	return spec.ParseConfig(data)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, path)
}
