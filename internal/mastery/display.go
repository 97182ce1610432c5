package mastery

// Label returns the capitalized name used in headings.
func (s WordState) Label() string {
	switch s {
	case StateNew:
		return "New"
	case StateLearning:
		return "Learning"
	case StateMastered:
		return "Mastered"
	default:
		return string(s)
	}
}

// Icon returns a one-cell marker for word lists.
func (s WordState) Icon() string {
	switch s {
	case StateLearning:
		return "◐"
	case StateMastered:
		return "●"
	default:
		return "○"
	}
}
