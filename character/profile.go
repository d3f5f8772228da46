package character

import "fmt"

// Mode selects which update strategy a profile uses.
type Mode int

const (
	// ModeDash is top-down 8-way movement with a timed speed boost.
	ModeDash Mode = iota
	// ModePlatform is side-view running and jumping under gravity.
	ModePlatform
)

func (m Mode) String() string {
	switch m {
	case ModeDash:
		return "dash"
	case ModePlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Bounds is the inclusive rectangle the character's center is clamped to.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Profile holds every tunable constant for one motion profile. A
// Profile is plain data; Validate gates it once at configuration time
// so the per-frame update never has to check.
type Profile struct {
	Mode   Mode
	SpawnX int
	SpawnY int
	Bounds Bounds

	// Dash profile.
	Speed        int // pixels per frame
	DashSpeed    int // pixels per frame while the dash timer runs
	DashDuration int // frames of boosted speed per trigger

	// Platform profile.
	RunSpeed        int
	Gravity         float64 // added to vertical velocity per airborne frame
	JumpVelocity    float64 // negative, upward
	MaxFallVelocity float64
	GroundY         int

	// AnimInterval is how many frames each animation frame is held.
	AnimInterval int
}

// Validate rejects out-of-range constants. Zero or negative speeds,
// durations, and intervals are configuration mistakes, not states the
// update loop should have to survive.
func (p Profile) Validate() error {
	if p.Mode != ModeDash && p.Mode != ModePlatform {
		return fmt.Errorf("profile: unknown mode %d", int(p.Mode))
	}
	if p.AnimInterval <= 0 {
		return fmt.Errorf("profile: anim interval must be positive, got %d", p.AnimInterval)
	}
	if p.Bounds.MinX >= p.Bounds.MaxX || p.Bounds.MinY >= p.Bounds.MaxY {
		return fmt.Errorf("profile: inverted bounds %+v", p.Bounds)
	}
	switch p.Mode {
	case ModeDash:
		if p.Speed <= 0 {
			return fmt.Errorf("profile: speed must be positive, got %d", p.Speed)
		}
		if p.DashSpeed <= 0 {
			return fmt.Errorf("profile: dash speed must be positive, got %d", p.DashSpeed)
		}
		if p.DashDuration <= 0 {
			return fmt.Errorf("profile: dash duration must be positive, got %d", p.DashDuration)
		}
	case ModePlatform:
		if p.RunSpeed <= 0 {
			return fmt.Errorf("profile: run speed must be positive, got %d", p.RunSpeed)
		}
		if p.Gravity <= 0 {
			return fmt.Errorf("profile: gravity must be positive, got %g", p.Gravity)
		}
		if p.JumpVelocity >= 0 {
			return fmt.Errorf("profile: jump velocity must be negative (upward), got %g", p.JumpVelocity)
		}
		if p.MaxFallVelocity <= 0 {
			return fmt.Errorf("profile: max fall velocity must be positive, got %g", p.MaxFallVelocity)
		}
		// strictly below the top edge so the jump nudge has headroom
		if p.GroundY <= p.Bounds.MinY || p.GroundY > p.Bounds.MaxY {
			return fmt.Errorf("profile: ground y %d outside bounds %+v", p.GroundY, p.Bounds)
		}
	}
	return nil
}
