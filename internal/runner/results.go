package runner

import (
	"fmt"
	"time"
)

// Results summarizes one finished session.
type Results struct {
	SessionID  string    `json:"session_id"`
	Title      string    `json:"title"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Answered   int       `json:"answered"`
	Skipped    int       `json:"skipped"`
	Empty      bool      `json:"empty"`
	Outcomes   []Outcome `json:"outcomes"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Outcome records what happened at one position.
type Outcome struct {
	Position int    `json:"position"`
	Text     string `json:"text,omitempty"`
	Expected bool   `json:"expected"`
	Answer   bool   `json:"answer"`
	Correct  bool   `json:"correct"`
	Skipped  bool   `json:"skipped"`
	Reason   string `json:"reason,omitempty"`
}

// ScoreLine renders the final score contract line.
func (r Results) ScoreLine() string {
	return fmt.Sprintf("Final score: %d/%d", r.Score, r.Total)
}
