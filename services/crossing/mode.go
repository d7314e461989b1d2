package crossing

// Mode is the active vehicle signal colour.
type Mode uint8

const (
	Green Mode = iota
	Yellow
	Red
)

// Next returns the mode that follows m in the fixed cycle
// Green -> Yellow -> Red -> Green.
func (m Mode) Next() Mode {
	switch m {
	case Green:
		return Yellow
	case Yellow:
		return Red
	default:
		return Green
	}
}

func (m Mode) String() string {
	switch m {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}
