package practice

import "github.com/abhisek/sabdam/internal/tips"

// tipLoadedMsg carries a generated tip back to the screen that asked.
type tipLoadedMsg struct {
	QuestionID string
	Tip        *tips.Tip
	Err        error
}
