package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"yesnoquiz/internal/runner"
)

// Model renders a live console UI using Bubble Tea.
type Model struct {
	state        State
	table        table.Model
	input        textinput.Model
	events       <-chan Event
	answers      chan<- string
	cancel       func()
	tickInterval time.Duration
	textWidth    int
	now          time.Time
	noColor      bool
}

// Options configures the live UI model.
type Options struct {
	Title        string
	NoColor      bool
	TickInterval time.Duration
	// Cancel is called when the player interrupts the UI with ctrl+c.
	Cancel func()
}

// NewModel constructs a live UI model for an event stream. Submitted lines
// are delivered on answers.
func NewModel(events <-chan Event, answers chan<- string, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	columns := defaultColumns()
	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	input := textinput.New()
	input.Prompt = runner.AnswerLabel + " (yes/no): "
	input.Placeholder = "yes or no"
	input.CharLimit = 64
	input.Focus()

	return Model{
		state:        NewState(opts.Title),
		table:        t,
		input:        input,
		events:       events,
		answers:      answers,
		cancel:       opts.Cancel,
		tickInterval: tickInterval,
		textWidth:    columns[1].Width,
		now:          time.Now(),
		noColor:      opts.NoColor,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init starts ticking and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick(m.tickInterval), textinput.Blink)
}

// Update consumes UI events, key presses and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC:
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		columns := columnsForWidth(typed.Width)
		m.textWidth = columns[1].Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-8, 1))
		m.table.SetColumns(columns)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor, m.textWidth))
		return m, nil
	case EventMsg:
		m = applyEvent(m, typed.Event)
		return m, waitForEvent(m.events)
	case tickMsg:
		m.now = time.Time(typed)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor, m.textWidth))
		return m, tick(m.tickInterval)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the live UI.
func (m Model) View() string {
	parts := []string{
		renderHeader(m.state, m.now, m.noColor),
		renderSummary(m.state, m.noColor),
		m.table.View(),
		renderStage(m.state, m.noColor),
	}
	if m.state.Current > 0 {
		parts = append(parts, m.input.View())
	}
	if notice := renderNotice(m.state, m.noColor); notice != "" {
		parts = append(parts, notice)
	}
	if footer := renderFooter(m.state, m.noColor); footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// submit hands the typed line to the runner when a question is waiting.
// Lines typed while nothing is waiting are discarded.
func (m Model) submit() Model {
	line := m.input.Value()
	m.input.Reset()
	if m.state.Current == 0 || m.answers == nil {
		return m
	}
	select {
	case m.answers <- line:
	default:
	}
	return m
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// tickMsg carries a clock tick for updates.
type tickMsg time.Time

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// applyEvent mutates model state based on a UI event.
func applyEvent(model Model, event Event) Model {
	switch event.Kind {
	case EventSessionStart:
		model.state = ReduceSessionStart(model.state, event.SessionID, event.Title, event.Total)
		if model.state.StartedAt.IsZero() {
			model.state.StartedAt = time.Now()
		}
	case EventCountdown:
		model.state = ReduceCountdown(model.state, event.Remaining)
	case EventQuestion:
		model.state = Reduce(model.state, event.Question)
	case EventReject:
		model.state = ReduceReject(model.state, event.Input)
	case EventSessionEnd:
		model.state = ReduceSessionEnd(model.state, event.Results)
	}
	model.table.SetRows(rowsForState(model.state, model.now, model.noColor, model.textWidth))
	return model
}
