package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"yesnoquiz/internal/prompt"
	"yesnoquiz/internal/question"
	"yesnoquiz/internal/testutil"
)

// countingAsker wraps an Asker and counts invocations.
type countingAsker struct {
	next  Asker
	calls int
}

func (a *countingAsker) AskYesNo(ctx context.Context, label string) (bool, error) {
	a.calls++
	return a.next.AskYesNo(ctx, label)
}

// newTestRunner builds a runner fed by the given answer lines.
func newTestRunner(cfg Config, answers []string, out *bytes.Buffer) (*Runner, *countingAsker, *testutil.FakeClock) {
	input := strings.Join(answers, "\n")
	if input != "" {
		input += "\n"
	}
	asker := &countingAsker{next: prompt.New(prompt.NewScannerReader(strings.NewReader(input)), out, prompt.Options{})}
	clock := testutil.NewFakeClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	r := New(cfg, Options{
		Asker:   asker,
		Out:     out,
		Sleeper: clock,
		NoColor: true,
		NewID:   func() string { return "session-1" },
		Now:     clock.Now,
	})
	return r, asker, clock
}

// generatedSet builds n well-formed questions with alternating answers.
func generatedSet(n int) ([]question.Item, []bool) {
	entries := make([]question.Entry, 0, n)
	expected := make([]bool, 0, n)
	for i := 0; i < n; i++ {
		want := i%3 != 1
		entries = append(entries, question.Pair("Question number "+string(rune('A'+i))+"?", want))
		expected = append(expected, want)
	}
	return question.Ingest(entries), expected
}

func answerLines(expected []bool, negate bool) []string {
	lines := make([]string, 0, len(expected))
	for _, want := range expected {
		if want != negate {
			lines = append(lines, "yes")
		} else {
			lines = append(lines, "no")
		}
	}
	return lines
}

func exampleSet() []question.Item {
	return question.Ingest([]question.Entry{
		question.Pair("Is the sky blue?", true),
		question.Pair("Do fish live on land?", false),
	})
}

func runContext(t *testing.T) context.Context {
	t.Helper()
	return testutil.Context(t, 2*time.Second)
}
