package live

import "yesnoquiz/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSessionStart signals the start of a session.
	EventSessionStart EventKind = iota
	// EventCountdown reports a countdown tick.
	EventCountdown
	// EventQuestion delivers a question status update.
	EventQuestion
	// EventReject reports an answer that was neither yes nor no.
	EventReject
	// EventSessionEnd signals session completion.
	EventSessionEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	SessionID string
	Title     string
	Total     int
	Remaining int
	Input     string
	Question  runner.QuestionEvent
	Results   runner.Results
}
