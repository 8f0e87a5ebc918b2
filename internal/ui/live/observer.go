package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"yesnoquiz/internal/prompt"
	"yesnoquiz/internal/runner"
)

// Controller runs the live UI and implements runner.Observer. Lines the
// player submits are available through Answers.
type Controller struct {
	events  chan Event
	answers chan string
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
	err     error
}

// Start launches a live UI controller reading keys from in and drawing to out.
func Start(in io.Reader, out io.Writer, opts Options) *Controller {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	events := make(chan Event, 256)
	answers := make(chan string, 16)
	model := NewModel(events, answers, opts)
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		answers: answers,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, controller.err = program.Run()
		// Nothing sends answers once the program has stopped.
		close(answers)
		close(controller.done)
	}()
	return controller
}

// Answers returns a line reader fed by the UI's answer input. It reports
// io.EOF once the UI has exited.
func (c *Controller) Answers() *prompt.ChanReader {
	return prompt.NewChanReader(c.answers)
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}

// Wait blocks until the UI has exited and returns its error, if any.
func (c *Controller) Wait() error {
	if c == nil {
		return nil
	}
	<-c.done
	return c.err
}

// OnSessionStart forwards session start events to the UI.
func (c *Controller) OnSessionStart(sessionID string, title string, total int) {
	c.send(Event{Kind: EventSessionStart, SessionID: sessionID, Title: title, Total: total})
}

// OnCountdown forwards countdown ticks to the UI.
func (c *Controller) OnCountdown(remaining int) {
	c.send(Event{Kind: EventCountdown, Remaining: remaining})
}

// OnQuestionEvent forwards question status updates to the UI.
func (c *Controller) OnQuestionEvent(event runner.QuestionEvent) {
	c.send(Event{Kind: EventQuestion, Question: event})
}

// OnReject forwards rejected input to the UI. It matches prompt.Options.OnReject.
func (c *Controller) OnReject(input string) {
	c.send(Event{Kind: EventReject, Input: input})
}

// OnSessionEnd forwards completion to the UI and closes it.
func (c *Controller) OnSessionEnd(results runner.Results) {
	c.send(Event{Kind: EventSessionEnd, Results: results})
	c.Close()
}

// send delivers an event, waiting for buffer space while the UI runs.
// Events sent after Close or after the UI exited are discarded.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	case <-c.done:
	}
}

var _ runner.Observer = (*Controller)(nil)
