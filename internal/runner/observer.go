package runner

import "time"

// QuestionEventType identifies a question status update for observers.
type QuestionEventType string

const (
	// QuestionPending marks a question not yet reached.
	QuestionPending QuestionEventType = "pending"
	// QuestionPresented marks a question shown and awaiting an answer.
	QuestionPresented QuestionEventType = "presented"
	// QuestionCorrect marks a correct answer.
	QuestionCorrect QuestionEventType = "correct"
	// QuestionIncorrect marks an incorrect answer.
	QuestionIncorrect QuestionEventType = "incorrect"
	// QuestionSkipped marks a malformed entry that was skipped.
	QuestionSkipped QuestionEventType = "skipped"
)

// QuestionEvent carries a single status update for a question.
type QuestionEvent struct {
	SessionID string
	Position  int
	Total     int
	Text      string
	Type      QuestionEventType
	Answer    bool
	Raw       string
	Reason    string
	EmittedAt time.Time
}

//go:generate mockgen -source=observer.go -destination=mock/observer_mock.go

// Observer receives session lifecycle events for UI or logging.
type Observer interface {
	// OnSessionStart signals the start of a session.
	OnSessionStart(sessionID string, title string, total int)
	// OnCountdown reports the seconds remaining before the first question; 0 means go.
	OnCountdown(remaining int)
	// OnQuestionEvent delivers a question status update.
	OnQuestionEvent(event QuestionEvent)
	// OnSessionEnd signals session completion.
	OnSessionEnd(results Results)
}

type nopObserver struct{}

func (nopObserver) OnSessionStart(string, string, int) {}
func (nopObserver) OnCountdown(int)                    {}
func (nopObserver) OnQuestionEvent(QuestionEvent)      {}
func (nopObserver) OnSessionEnd(Results)               {}
