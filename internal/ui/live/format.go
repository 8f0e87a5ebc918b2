package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"yesnoquiz/internal/runner"
)

// formatPosition formats a question position.
func formatPosition(position int) string {
	return "Q" + pad2(position)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionText truncates question text for display.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return ""
	}
	if limit < 4 || len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

func formatAnswer(answer bool) string {
	if answer {
		return "yes"
	}
	return "no"
}

// formatStatus renders a status string for a row.
func formatStatus(row QuestionRow, noColor bool) string {
	return stylizeStatus(statusLabel(row.Status), row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status runner.QuestionEventType) string {
	switch status {
	case runner.QuestionPending:
		return "pending"
	case runner.QuestionPresented:
		return "waiting for answer"
	case runner.QuestionCorrect:
		return "correct"
	case runner.QuestionIncorrect:
		return "incorrect"
	case runner.QuestionSkipped:
		return "skipped"
	default:
		return string(status)
	}
}

// formatRowDuration returns how long a question took to answer.
func formatRowDuration(row QuestionRow, now time.Time) string {
	if row.PresentedAt.IsZero() {
		return ""
	}
	if !row.AnsweredAt.IsZero() {
		return formatDuration(row.AnsweredAt.Sub(row.PresentedAt))
	}
	return formatDuration(now.Sub(row.PresentedAt))
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(100 * time.Millisecond).String()
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.QuestionEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.QuestionEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.QuestionCorrect:
		color = lipgloss.Color("42")
	case runner.QuestionIncorrect:
		color = lipgloss.Color("220")
	case runner.QuestionPresented:
		color = lipgloss.Color("33")
	case runner.QuestionSkipped, runner.QuestionPending:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
