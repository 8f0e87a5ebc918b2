package question

import "strings"

// Token classifies a line of user input.
type Token int

const (
	// Unrecognized is any input that is neither yes nor no.
	Unrecognized Token = iota
	// Affirmative is "yes" or "y".
	Affirmative
	// Negative is "no" or "n".
	Negative
)

// String returns a readable token name.
func (token Token) String() string {
	switch token {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "unrecognized"
	}
}

// Classify maps raw input to a token, ignoring case and surrounding
// whitespace.
func Classify(raw string) Token {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y":
		return Affirmative
	case "no", "n":
		return Negative
	default:
		return Unrecognized
	}
}
