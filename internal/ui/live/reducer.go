package live

import (
	"fmt"

	"yesnoquiz/internal/prompt"
	"yesnoquiz/internal/runner"
)

// Reduce applies a question event to the UI state.
func Reduce(state State, event runner.QuestionEvent) State {
	state = ensureRows(state, max(event.Total, event.Position))
	state = applyQuestionEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ReduceSessionStart resets the state for a new session.
func ReduceSessionStart(state State, sessionID, title string, total int) State {
	state.SessionID = sessionID
	if title != "" {
		state.Title = title
	}
	state.Total = total
	state.Countdown = -1
	state.Current = 0
	state.Notice = ""
	state.Rows = nil
	state = ensureRows(state, total)
	state.Counts = recount(state.Rows)
	return state
}

// ReduceCountdown records a countdown tick. Zero means the quiz has begun.
func ReduceCountdown(state State, remaining int) State {
	if remaining <= 0 {
		state.Countdown = -1
		state.LastEvent = "Go!"
		return state
	}
	state.Countdown = remaining
	return state
}

// ReduceReject shows the corrective message after unrecognized input.
func ReduceReject(state State, input string) State {
	state.Notice = prompt.RejectMessage
	if input == "" {
		state.LastEvent = "empty answer rejected"
	} else {
		state.LastEvent = fmt.Sprintf("%q rejected", input)
	}
	return state
}

// ReduceSessionEnd records the final results.
func ReduceSessionEnd(state State, results runner.Results) State {
	state.Finished = true
	state.Current = 0
	state.Notice = ""
	if results.Empty {
		state.ScoreLine = runner.EmptyMessage
	} else {
		state.ScoreLine = results.ScoreLine()
	}
	state.LastEvent = state.ScoreLine
	return state
}

// ensureRows grows the state rows to n pending positions.
func ensureRows(state State, n int) State {
	if n <= len(state.Rows) {
		return state
	}
	rows := make([]QuestionRow, n)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < n; i++ {
		rows[i] = QuestionRow{Position: i + 1, Status: runner.QuestionPending}
	}
	state.Rows = rows
	return state
}

// applyQuestionEvent updates a row with the given event.
func applyQuestionEvent(state State, event runner.QuestionEvent) State {
	if event.Position <= 0 || event.Position > len(state.Rows) {
		return state
	}
	row := state.Rows[event.Position-1]
	if row.Text == "" {
		row.Text = event.Text
	}
	row.Status = event.Type
	switch event.Type {
	case runner.QuestionPresented:
		row.PresentedAt = event.EmittedAt
		state.Current = event.Position
		state.Notice = ""
	case runner.QuestionCorrect, runner.QuestionIncorrect:
		row.Answer = formatAnswer(event.Answer)
		row.AnsweredAt = event.EmittedAt
		state.Current = 0
		state.Notice = ""
	case runner.QuestionSkipped:
		row.Text = event.Raw
		row.Reason = event.Reason
	}
	state.Rows[event.Position-1] = row
	return state
}

// recount recomputes status counts for the current rows.
func recount(rows []QuestionRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.QuestionPending:
			counts.Pending++
		case runner.QuestionPresented:
			counts.Presented++
		case runner.QuestionCorrect:
			counts.Correct++
		case runner.QuestionIncorrect:
			counts.Incorrect++
		case runner.QuestionSkipped:
			counts.Skipped++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.QuestionEvent) string {
	switch event.Type {
	case runner.QuestionCorrect:
		return fmt.Sprintf("Q%d %s", event.Position, runner.CorrectText)
	case runner.QuestionIncorrect:
		return fmt.Sprintf("Q%d %s", event.Position, runner.IncorrectText)
	case runner.QuestionSkipped:
		return fmt.Sprintf("Q%d skipped: %s", event.Position, event.Reason)
	}
	return ""
}
