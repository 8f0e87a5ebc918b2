package runner

// Accuracy returns the share of answered questions that were correct.
func (r Results) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Answered)
}

// summarize derives answered and skipped counts from outcomes.
func summarize(results *Results) {
	results.Answered = 0
	results.Skipped = 0
	for _, outcome := range results.Outcomes {
		if outcome.Skipped {
			results.Skipped++
			continue
		}
		results.Answered++
	}
}
