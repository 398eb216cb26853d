package world

// Direction represents one of the four movement directions.
type Direction int

// Direction constants, in menu order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all directions for iteration.
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four constants.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Delta returns the x and y offsets for one step in this direction.
// Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
