package character

// State is the character's posture. Which values occur depends on the
// motion profile: dash profiles cycle through Idle/Walking/Dashing,
// platform profiles through Idle/Running/Jumping.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateDashing
	StateRunning
	StateJumping
)

// String returns the posture name for debug overlays. Total over all
// int values; anything outside the enumeration reads "unknown".
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walk"
	case StateDashing:
		return "dash"
	case StateRunning:
		return "run"
	case StateJumping:
		return "jump"
	default:
		return "unknown"
	}
}

// frameCount is the number of animation frames a posture cycles
// through. Only the walk/run cycles are animated; every other posture
// holds a single frame.
func frameCount(s State) int {
	switch s {
	case StateWalking, StateRunning:
		return 2
	default:
		return 1
	}
}
