package spec

import "yesnoquiz/internal/question"

// Config is the quiz file schema.
type Config struct {
	Version          int              `yaml:"version" json:"version" validate:"required,eq=1"`
	Title            string           `yaml:"title" json:"title" validate:"required"`
	Description      string           `yaml:"description" json:"description"`
	CountdownSeconds int              `yaml:"countdown_seconds" json:"countdown_seconds" validate:"min=0"`
	Questions        []question.Entry `yaml:"questions" json:"questions" validate:"excluded_with=QuestionsFile"`
	QuestionsFile    string           `yaml:"questions_file" json:"questions_file"`
}
