package session

// Phase is the controller's lifecycle position.
type Phase int

const (
	PhaseUninitialized Phase = iota // No session
	PhaseActive                     // Serving questions
	PhaseComplete                   // Every question answered and advanced past
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "uninitialized"
	}
}
