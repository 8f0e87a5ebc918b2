package config

import (
	"strings"

	"yesnoquiz/internal/spec"
)

func Normalize(cfg *spec.Config) {
	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.Description = strings.TrimSpace(cfg.Description)
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
}
