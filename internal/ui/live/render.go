package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the session header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := state.Title
	if line == "" {
		line = "Quiz"
	}
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + now.Sub(state.StartedAt).Round(time.Second).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Total: " + fmtInt(state.Total) +
		" Correct: " + fmtInt(counts.Correct) +
		" Incorrect: " + fmtInt(counts.Incorrect) +
		" Skipped: " + fmtInt(counts.Skipped) +
		" Pending: " + fmtInt(counts.Pending+counts.Presented)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderStage renders the countdown or the question awaiting an answer.
func renderStage(state State, noColor bool) string {
	if state.Countdown > 0 {
		return stylize("Starting in "+fmtInt(state.Countdown)+"...", noColor, lipgloss.Color("39"))
	}
	if state.Finished {
		return stylize(state.ScoreLine, noColor, lipgloss.Color("42"))
	}
	row, ok := state.currentRow()
	if !ok {
		return ""
	}
	text := row.Text
	if state.Total > 1 {
		text = "Q" + fmtInt(row.Position) + ". " + text
	}
	return stylize(text, noColor, lipgloss.Color("252"))
}

// renderNotice renders the corrective message after rejected input.
func renderNotice(state State, noColor bool) string {
	if state.Notice == "" {
		return ""
	}
	return stylize(state.Notice, noColor, lipgloss.Color("220"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
