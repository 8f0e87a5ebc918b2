package live

import (
	"time"

	"yesnoquiz/internal/runner"
)

// QuestionRow holds UI state for a single position in the quiz.
type QuestionRow struct {
	Position    int
	Text        string
	Status      runner.QuestionEventType
	Answer      string
	Reason      string
	PresentedAt time.Time
	AnsweredAt  time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Pending   int
	Presented int
	Correct   int
	Incorrect int
	Skipped   int
}

// State captures the live UI state for one session.
type State struct {
	SessionID string
	Title     string
	Total     int
	// Countdown is the seconds left before the first question; -1 when no
	// countdown is running.
	Countdown int
	// Current is the position awaiting an answer, 0 when none is.
	Current   int
	StartedAt time.Time
	Notice    string
	LastEvent string
	ScoreLine string
	Finished  bool
	Rows      []QuestionRow
	Counts    StatusCounts
}

// NewState returns an empty state with no countdown running.
func NewState(title string) State {
	return State{Title: title, Countdown: -1}
}

// currentRow returns the row awaiting an answer.
func (s State) currentRow() (QuestionRow, bool) {
	if s.Current <= 0 || s.Current > len(s.Rows) {
		return QuestionRow{}, false
	}
	return s.Rows[s.Current-1], true
}
