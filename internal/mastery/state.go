package mastery

// WordState is a word's position in the learning lifecycle. It is derived
// from the stored correct-answer count and never persisted.
type WordState string

const (
	StateNew      WordState = "new"
	StateLearning WordState = "learning"
	StateMastered WordState = "mastered"
)

// MasteryThreshold is the number of correct answers at which a word
// counts as mastered.
const MasteryThreshold = 3

// StateFor classifies a correct-answer count.
func StateFor(correctCount int) WordState {
	switch {
	case correctCount <= 0:
		return StateNew
	case correctCount < MasteryThreshold:
		return StateLearning
	default:
		return StateMastered
	}
}

// States lists every state in lifecycle order.
func States() []WordState {
	return []WordState{StateNew, StateLearning, StateMastered}
}
