package question

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// File defines an external question entries file loaded from JSON or YAML.
type File struct {
	Version   int     `json:"version" yaml:"version"`
	Questions []Entry `json:"questions" yaml:"questions"`
}

// Question is a well-formed yes/no question.
type Question struct {
	Text     string
	Expected bool
}

// Entry is a raw question record as delivered by a loader. Its shape is not
// checked until Ingest.
type Entry struct {
	Value any
}

// Pair builds a well-formed entry from a question text and its answer.
func Pair(text string, expected bool) Entry {
	return Entry{Value: []any{text, expected}}
}

// UnmarshalYAML keeps the decoded node as a generic value.
func (entry *Entry) UnmarshalYAML(node *yaml.Node) error {
	var value any
	if err := node.Decode(&value); err != nil {
		return err
	}
	entry.Value = value
	return nil
}

// MarshalYAML writes the raw value back out.
func (entry Entry) MarshalYAML() (any, error) {
	return entry.Value, nil
}

// UnmarshalJSON keeps the decoded payload as a generic value.
func (entry *Entry) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	entry.Value = value
	return nil
}

// MarshalJSON writes the raw value back out.
func (entry Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entry.Value)
}

// Item is one position of an ingested question set: either a usable
// Question or the reason the entry was rejected.
type Item struct {
	Position int
	Question Question
	Invalid  *InvalidEntry
}

// Valid reports whether the item carries a usable question.
func (item Item) Valid() bool {
	return item.Invalid == nil
}
