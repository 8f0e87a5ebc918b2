package runner

import "testing"

func TestSessionTransitions(t *testing.T) {
	s := newSession("id", 2)
	if s.Phase != PhaseNotStarted {
		t.Fatalf("expected not started, got %s", s.Phase)
	}
	s.begin()
	if s.Phase != PhasePresenting || s.Position != 1 {
		t.Fatalf("expected presenting(1), got %s(%d)", s.Phase, s.Position)
	}
	s.score(true)
	if s.Phase != PhaseScoring || s.Score != 1 {
		t.Fatalf("expected scoring with score 1, got %s score %d", s.Phase, s.Score)
	}
	s.advance()
	if s.Phase != PhasePresenting || s.Position != 2 {
		t.Fatalf("expected presenting(2), got %s(%d)", s.Phase, s.Position)
	}
	s.skip()
	if s.Phase != PhaseScoring || s.Score != 1 {
		t.Fatalf("expected skip to leave score at 1, got %s score %d", s.Phase, s.Score)
	}
	s.advance()
	if s.Phase != PhaseFinished {
		t.Fatalf("expected finished, got %s", s.Phase)
	}
	if s.Total != 2 {
		t.Fatalf("total must not change, got %d", s.Total)
	}
}

func TestSessionEmptyFinishesImmediately(t *testing.T) {
	s := newSession("id", 0)
	s.begin()
	if s.Phase != PhaseFinished {
		t.Fatalf("expected finished for empty set, got %s", s.Phase)
	}
}

func TestResultsAccuracy(t *testing.T) {
	results := Results{Score: 1, Outcomes: []Outcome{{Correct: true}, {}, {Skipped: true}}}
	summarize(&results)
	if results.Answered != 2 || results.Skipped != 1 {
		t.Fatalf("unexpected counts: %+v", results)
	}
	if results.Accuracy() != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %v", results.Accuracy())
	}
	if (Results{}).Accuracy() != 0 {
		t.Fatalf("expected zero accuracy without answers")
	}
}
