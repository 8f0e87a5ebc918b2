package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"yesnoquiz/internal/runner"
)

const (
	positionWidth = 4
	statusWidth   = 20
	answerWidth   = 6
	timeWidth     = 8
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the columns used before the terminal size is known.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth gives the question column whatever width remains.
func columnsForWidth(width int) []table.Column {
	fixed := positionWidth + statusWidth + answerWidth + timeWidth + 10
	return []table.Column{
		{Title: "#", Width: positionWidth},
		{Title: "Question", Width: max(width-fixed, 20)},
		{Title: "Status", Width: statusWidth},
		{Title: "Answer", Width: answerWidth},
		{Title: "Time", Width: timeWidth},
	}
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool, textWidth int) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		text := row.Text
		if row.Status == runner.QuestionPending && text == "" {
			text = "..."
		}
		rows = append(rows, table.Row{
			formatPosition(row.Position),
			formatQuestionText(text, textWidth),
			formatStatus(row, noColor),
			row.Answer,
			formatRowDuration(row, now),
		})
	}
	return rows
}
