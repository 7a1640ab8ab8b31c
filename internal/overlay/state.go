package overlay

// State is the overlay window's lifecycle state
type State int

const (
	// Absent means no window object exists
	Absent State = iota
	// Hidden means the window exists but is not shown
	Hidden
	// Visible means the window exists and is shown
	Visible
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}
