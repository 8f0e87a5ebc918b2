package live

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"yesnoquiz/internal/runner"
)

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, r := range line {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelSubmitsAnswerWhenQuestionWaiting(t *testing.T) {
	answers := make(chan string, 4)
	m := NewModel(nil, answers, Options{NoColor: true})

	m = typeLine(t, m, "early")
	if len(answers) != 0 {
		t.Fatalf("lines typed before a question must be dropped")
	}

	m = applyEvent(m, Event{Kind: EventSessionStart, SessionID: "s", Title: "Quiz", Total: 1})
	m = applyEvent(m, Event{Kind: EventQuestion, Question: runner.QuestionEvent{Position: 1, Total: 1, Text: "Is the sky blue?", Type: runner.QuestionPresented}})
	m = typeLine(t, m, " Yes ")

	select {
	case got := <-answers:
		if got != " Yes " {
			t.Fatalf("expected raw line, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected submitted answer")
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input reset after submit")
	}
	view := m.View()
	if !strings.Contains(view, "Is the sky blue?") || !strings.Contains(view, runner.AnswerLabel) {
		t.Fatalf("expected question and prompt in view:\n%s", view)
	}
}

func TestModelCtrlCCancels(t *testing.T) {
	cancelled := false
	m := NewModel(nil, nil, Options{NoColor: true, Cancel: func() { cancelled = true }})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !cancelled {
		t.Fatalf("expected cancel to be called")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestModelShowsFinalScore(t *testing.T) {
	m := NewModel(nil, nil, Options{NoColor: true})
	m = applyEvent(m, Event{Kind: EventSessionStart, Title: "Quiz", Total: 2})
	m = applyEvent(m, Event{Kind: EventSessionEnd, Results: runner.Results{Score: 2, Total: 2}})
	if !strings.Contains(m.View(), "Final score: 2/2") {
		t.Fatalf("expected final score in view:\n%s", m.View())
	}
	if !m.State().Finished {
		t.Fatalf("expected finished state")
	}
}

func TestWaitForEventQuitsOnClose(t *testing.T) {
	events := make(chan Event)
	close(events)
	if _, ok := waitForEvent(events)().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit when events close")
	}
}
