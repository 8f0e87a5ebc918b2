package runner

// Phase is the runner state for a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePresenting
	PhaseScoring
	PhaseFinished
)

// String returns the phase name.
func (phase Phase) String() string {
	switch phase {
	case PhaseNotStarted:
		return "not_started"
	case PhasePresenting:
		return "presenting"
	case PhaseScoring:
		return "scoring"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one quiz run. Total is fixed at creation
// and never shrinks for skipped entries.
type Session struct {
	ID       string
	Phase    Phase
	Position int
	Score    int
	Total    int
}

func newSession(id string, total int) *Session {
	return &Session{ID: id, Phase: PhaseNotStarted, Total: total}
}

// begin moves to Presenting(1), or straight to Finished for an empty set.
func (s *Session) begin() {
	if s.Total == 0 {
		s.Phase = PhaseFinished
		return
	}
	s.Position = 1
	s.Phase = PhasePresenting
}

// score moves Presenting(i) to Scoring(i).
func (s *Session) score(correct bool) {
	s.Phase = PhaseScoring
	if correct {
		s.Score++
	}
}

// skip moves Presenting(i) to Scoring(i) without touching the score.
func (s *Session) skip() {
	s.Phase = PhaseScoring
}

// advance moves Scoring(i) to Presenting(i+1), or Finished after the last question.
func (s *Session) advance() {
	if s.Position >= s.Total {
		s.Phase = PhaseFinished
		return
	}
	s.Position++
	s.Phase = PhasePresenting
}
