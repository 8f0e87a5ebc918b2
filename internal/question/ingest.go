package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InvalidEntry describes a question entry that has the wrong shape.
type InvalidEntry struct {
	Position int
	Raw      string
	Reason   string
}

// Error renders the entry position and reason.
func (entry *InvalidEntry) Error() string {
	return fmt.Sprintf("entry %d: %s", entry.Position, entry.Reason)
}

// Ingest validates raw entries in order. Malformed entries are kept in place
// as invalid items so positions and the set size are preserved.
func Ingest(entries []Entry) []Item {
	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		items = append(items, ingestEntry(i+1, entry))
	}
	return items
}

// CountInvalid returns the number of invalid items in a set.
func CountInvalid(items []Item) int {
	count := 0
	for _, item := range items {
		if !item.Valid() {
			count++
		}
	}
	return count
}

func ingestEntry(position int, entry Entry) Item {
	q, reason := decodeEntry(entry.Value)
	if reason != "" {
		return Item{
			Position: position,
			Invalid: &InvalidEntry{
				Position: position,
				Raw:      FormatRaw(entry.Value),
				Reason:   reason,
			},
		}
	}
	return Item{Position: position, Question: q}
}

func decodeEntry(value any) (Question, string) {
	switch typed := value.(type) {
	case []any:
		if len(typed) != 2 {
			return Question{}, fmt.Sprintf("expected a [question, answer] pair, got %d elements", len(typed))
		}
		return decodeFields(typed[0], typed[1])
	case map[string]any:
		return decodeMapping(typed)
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, field := range typed {
			name, ok := key.(string)
			if !ok {
				return Question{}, fmt.Sprintf("unsupported key %v", key)
			}
			converted[name] = field
		}
		return decodeMapping(converted)
	case nil:
		return Question{}, "entry is empty"
	default:
		return Question{}, fmt.Sprintf("expected a [question, answer] pair, got %s", describe(value))
	}
}

func decodeMapping(fields map[string]any) (Question, string) {
	text, hasText := fields["question"]
	answer, hasAnswer := fields["answer"]
	if !hasText || !hasAnswer || len(fields) != 2 {
		return Question{}, "expected exactly the keys question and answer"
	}
	return decodeFields(text, answer)
}

func decodeFields(textValue, answerValue any) (Question, string) {
	text, ok := textValue.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return Question{}, "question text must be a non-empty string"
	}
	expected, ok := coerceBool(answerValue)
	if !ok {
		return Question{}, fmt.Sprintf("answer must be a boolean, got %s", describe(answerValue))
	}
	return Question{Text: strings.TrimSpace(text), Expected: expected}, ""
}

// coerceBool accepts booleans and numbers; any non-zero number is true.
func coerceBool(value any) (bool, bool) {
	switch typed := value.(type) {
	case bool:
		return typed, true
	case int:
		return typed != 0, true
	case int64:
		return typed != 0, true
	case uint64:
		return typed != 0, true
	case float64:
		return typed != 0, true
	default:
		return false, false
	}
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case []any:
		return "a list"
	case map[string]any, map[any]any:
		return "a mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// FormatRaw renders a raw entry compactly for diagnostics.
func FormatRaw(value any) string {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(payload)
}
