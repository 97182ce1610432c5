package session

// Result is the end-of-session score card.
type Result struct {
	Score   int
	Total   int
	Percent int
	Message string
}

// NewResult builds the score card for score out of total.
func NewResult(score, total int) Result {
	p := Percent(score, total)
	return Result{Score: score, Total: total, Percent: p, Message: ResultMessage(p)}
}

// Percent returns score/total as a whole percentage, rounded half up.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (total * 2)
}

// ResultMessage returns the encouragement shown for a percentage.
func ResultMessage(percent int) string {
	switch {
	case percent >= 100:
		return "Perfect! You're a pronunciation pro!"
	case percent >= 80:
		return "Excellent work! Keep it up!"
	case percent >= 60:
		return "Good effort! Practice makes perfect."
	default:
		return "Don't give up! Try reviewing the difficult words."
	}
}

// Feedback returns the verdict line shown after an answer.
func Feedback(correct bool) string {
	if correct {
		return "Great job!"
	}
	return "Keep practicing!"
}
