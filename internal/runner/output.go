package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 50

// User-facing messages that tests and the live UI match on.
const (
	EmptyMessage   = "No questions found. Add entries to the questions list in your quiz file."
	CorrectText    = "Correct!"
	IncorrectText  = "Incorrect."
	AnswerLabel    = "Your answer"
	skipLineFormat = "Skipping invalid question entry at position %d: %s"
)

// palette styles user-facing text. The renderer is bound to the output
// writer so non-terminal output stays plain.
type palette struct {
	renderer *lipgloss.Renderer
	noColor  bool
}

func newPalette(out io.Writer, noColor bool) palette {
	return palette{renderer: lipgloss.NewRenderer(out), noColor: noColor}
}

func (p palette) style(color string) lipgloss.Style {
	style := p.renderer.NewStyle()
	if p.noColor {
		return style
	}
	return style.Foreground(lipgloss.Color(color))
}

func (p palette) title(text string) string {
	style := p.style("33").Bold(!p.noColor)
	if lipgloss.Width(text) < ruleWidth {
		style = style.Width(ruleWidth).Align(lipgloss.Center)
	}
	return style.Render(text)
}

func (p palette) correct(text string) string {
	return p.style("42").Render(text)
}

func (p palette) incorrect(text string) string {
	return p.style("220").Render(text)
}

func (p palette) notice(text string) string {
	return p.style("244").Render(text)
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// writeBanner prints the title block and description.
func (r *Runner) writeBanner() {
	fmt.Fprintf(r.out, "\n%s\n", rule())
	fmt.Fprintln(r.out, r.palette.title(r.cfg.Title))
	fmt.Fprintf(r.out, "%s\n\n", rule())
	if r.cfg.Description != "" {
		fmt.Fprintf(r.out, "Description: %s\n\n", r.cfg.Description)
	}
}

// questionLine prefixes the text with its position when the set has more
// than one entry.
func questionLine(position, total int, text string) string {
	if total > 1 {
		return fmt.Sprintf("Q%d. %s", position, text)
	}
	return text
}
