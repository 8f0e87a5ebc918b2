package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"yesnoquiz/internal/spec"
)

// Issue captures a validation problem with a quiz field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates quiz validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "quiz validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks a quiz for correctness and referenced files. Question
// entries are not validated here; malformed entries are skipped at run time.
func Validate(cfg *spec.Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate quiz: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			add(fieldErr.Field(), issueMessage(fieldErr))
		}
	}

	if cfg.QuestionsFile != "" {
		path := resolvePath(baseDir, cfg.QuestionsFile)
		info, err := os.Stat(path)
		if err != nil {
			add("questions_file", fmt.Sprintf("file not found at %q", cfg.QuestionsFile))
		} else if info.IsDir() {
			add("questions_file", fmt.Sprintf("path %q is a directory", cfg.QuestionsFile))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// issueMessage maps a validator tag failure to a readable message.
func issueMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "eq":
		if fieldErr.Field() == "version" {
			return fmt.Sprintf("unsupported version %v", fieldErr.Value())
		}
		return fmt.Sprintf("must equal %s", fieldErr.Param())
	case "min":
		return fmt.Sprintf("must be >= %s", fieldErr.Param())
	case "excluded_with":
		return "cannot be combined with questions_file"
	default:
		return fmt.Sprintf("failed %q check", fieldErr.Tag())
	}
}
