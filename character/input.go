package character

// Direction is an 8-way compass direction plus Centre (no input).
type Direction int

const (
	Centre Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

// axisDeadZone is the per-axis threshold below which an analog stick
// reading counts as no input. Matches the standard gamepad stick noise
// floor used for keyboard-equivalent movement.
const axisDeadZone = 0.3

// Vector maps the direction to a unit movement vector in screen
// coordinates (y grows downward). Each component is -1, 0, or +1.
// Centre and any out-of-range value map to (0, 0).
func (d Direction) Vector() (int, int) {
	switch d {
	case N:
		return 0, -1
	case NE:
		return 1, -1
	case E:
		return 1, 0
	case SE:
		return 1, 1
	case S:
		return 0, 1
	case SW:
		return -1, 1
	case W:
		return -1, 0
	case NW:
		return -1, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Centre:
		return "centre"
	case N:
		return "n"
	case NE:
		return "ne"
	case E:
		return "e"
	case SE:
		return "se"
	case S:
		return "s"
	case SW:
		return "sw"
	case W:
		return "w"
	case NW:
		return "nw"
	default:
		return "unknown"
	}
}

// DirectionFromVector folds per-axis signs back into a Direction.
// Components outside {-1, 0, 1} are treated as their sign.
func DirectionFromVector(x, y int) Direction {
	if x > 0 {
		x = 1
	} else if x < 0 {
		x = -1
	}
	if y > 0 {
		y = 1
	} else if y < 0 {
		y = -1
	}
	switch [2]int{x, y} {
	case [2]int{0, -1}:
		return N
	case [2]int{1, -1}:
		return NE
	case [2]int{1, 0}:
		return E
	case [2]int{1, 1}:
		return SE
	case [2]int{0, 1}:
		return S
	case [2]int{-1, 1}:
		return SW
	case [2]int{-1, 0}:
		return W
	case [2]int{-1, -1}:
		return NW
	default:
		return Centre
	}
}

// DirectionFromAxes folds two normalized stick axes in [-1, 1] into an
// 8-way direction, applying the dead-zone per axis.
func DirectionFromAxes(x, y float64) Direction {
	var mx, my int
	if x < -axisDeadZone {
		mx = -1
	} else if x > axisDeadZone {
		mx = 1
	}
	if y < -axisDeadZone {
		my = -1
	} else if y > axisDeadZone {
		my = 1
	}
	return DirectionFromVector(mx, my)
}

// ParseDirection maps a direction name ("n", "ne", ...) to a Direction.
// Unrecognized names, including the empty string, map to Centre.
func ParseDirection(s string) Direction {
	switch s {
	case "n":
		return N
	case "ne":
		return NE
	case "e":
		return E
	case "se":
		return SE
	case "s":
		return S
	case "sw":
		return SW
	case "w":
		return W
	case "nw":
		return NW
	default:
		return Centre
	}
}

// Sample is one frame of mapped input: a direction plus the momentary
// button flags. It carries no state of its own.
type Sample struct {
	Direction Direction
	// Dash is true on the frame the dash button was pressed.
	Dash bool
	// Jump is true on the frame the jump button was pressed.
	Jump bool
}
