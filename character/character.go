// Package character implements the per-frame update for the single
// player-controlled sprite: input mapping, the posture state machine,
// movement (instant-clamped or gravity-integrated, per profile), and
// the frame-based animator. The package is deliberately free of any
// rendering or input-device imports so the whole core runs headless.
package character

import "github.com/milk9111/dashkid/common"

// Character is the one mutable entity. It is created once, mutated
// exactly once per frame by Update, and read by the renderer between
// updates. Position is the sprite's center in screen pixels.
type Character struct {
	X, Y int

	profile   Profile
	velY      float64
	state     State
	prevState State
	dashTimer int
	frame     int
	frameTick int
	facing    int // -1 left, +1 right; retained across idle frames
}

// New creates a Character at the profile's spawn position in Idle
// posture with all timers zero. The profile is validated here so
// Update can assume sane constants.
func New(p Profile) (*Character, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &Character{profile: p, facing: 1}
	c.Reset()
	return c, nil
}

// Reset restores the spawn state: spawn position (clamped into
// bounds), Idle posture, zero timers. Used on session restart.
func (c *Character) Reset() {
	c.X = common.Clamp(c.profile.SpawnX, c.profile.Bounds.MinX, c.profile.Bounds.MaxX)
	c.Y = common.Clamp(c.profile.SpawnY, c.profile.Bounds.MinY, c.profile.Bounds.MaxY)
	c.velY = 0
	c.state = StateIdle
	c.prevState = StateIdle
	c.dashTimer = 0
	c.frame = 0
	c.frameTick = 0
	c.facing = 1
}

// SetProfile swaps in new tuning constants without disturbing the
// character's position or timers, clamping the position into the new
// bounds. Invalid profiles are rejected and the old one stays active.
func (c *Character) SetProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.profile = p
	c.X = common.Clamp(c.X, p.Bounds.MinX, p.Bounds.MaxX)
	c.Y = common.Clamp(c.Y, p.Bounds.MinY, p.Bounds.MaxY)
	return nil
}

// Profile returns the active tuning constants.
func (c *Character) Profile() Profile { return c.profile }

// State returns the current posture.
func (c *Character) State() State { return c.state }

// PrevState returns the posture held before the most recent Update,
// for edge detection by callers.
func (c *Character) PrevState() State { return c.prevState }

// Frame returns the current animation frame index for the posture.
func (c *Character) Frame() int { return c.frame }

// Facing returns -1 or +1: the sign of the last nonzero horizontal input.
func (c *Character) Facing() int { return c.facing }

// VelY returns the vertical velocity (platform profile; 0 when grounded).
func (c *Character) VelY() float64 { return c.velY }

// DashFrames returns the frames remaining in the active dash, 0 when inactive.
func (c *Character) DashFrames() int { return c.dashTimer }

// Update advances the character by one frame from the given input
// sample. It must be called exactly once per display tick, before the
// frame's draw.
func (c *Character) Update(in Sample) {
	mx, my := in.Direction.Vector()
	c.prevState = c.state
	switch c.profile.Mode {
	case ModePlatform:
		c.updatePlatform(mx, in.Jump)
	default:
		c.updateDash(mx, my, in.Dash)
	}
	c.animate()
}

// updateDash: timed speed boost, 8-way instant movement, component-wise
// clamp. The boost cannot be retriggered while its timer runs, and
// once started it outlives the stick: posture stays Dashing for the
// full duration even with no movement input.
func (c *Character) updateDash(mx, my int, dashPressed bool) {
	p := &c.profile

	if dashPressed && c.dashTimer == 0 {
		c.dashTimer = p.DashDuration
	}

	speed := p.Speed
	dashing := c.dashTimer > 0
	if dashing {
		speed = p.DashSpeed
		c.dashTimer--
	}

	if mx != 0 || my != 0 {
		c.X = common.Clamp(c.X+mx*speed, p.Bounds.MinX, p.Bounds.MaxX)
		c.Y = common.Clamp(c.Y+my*speed, p.Bounds.MinY, p.Bounds.MaxY)
	}
	if mx != 0 {
		c.facing = mx
	}

	switch {
	case dashing:
		c.state = StateDashing
	case mx != 0 || my != 0:
		c.state = StateWalking
	default:
		c.state = StateIdle
	}
}

// updatePlatform: horizontal run, jump trigger, gravity integration.
// "Grounded" is decided from the position at frame start; a jump
// nudges the character one pixel above the ground line so the same
// frame already reads as airborne.
func (c *Character) updatePlatform(mx int, jumpPressed bool) {
	p := &c.profile

	if mx != 0 {
		c.X = common.Clamp(c.X+mx*p.RunSpeed, p.Bounds.MinX, p.Bounds.MaxX)
		c.facing = mx
	}

	if grounded := c.Y >= p.GroundY; grounded {
		if jumpPressed {
			c.velY = p.JumpVelocity
			c.Y = p.GroundY - 1
		} else {
			c.velY = 0
			c.Y = p.GroundY
		}
	} else {
		c.velY = common.ClampF(c.velY+p.Gravity, p.JumpVelocity, p.MaxFallVelocity)
		// integer pixels; truncation toward zero keeps slow rises slow
		c.Y = common.Clamp(c.Y+int(c.velY), p.Bounds.MinY, p.Bounds.MaxY)
		if c.Y >= p.GroundY {
			c.Y = p.GroundY
			c.velY = 0
		}
	}

	airborne := c.Y < p.GroundY
	switch c.state {
	case StateIdle:
		if airborne {
			c.state = StateJumping
		} else if mx != 0 {
			c.state = StateRunning
		}
	case StateRunning:
		if airborne {
			c.state = StateJumping
		} else if mx == 0 {
			c.state = StateIdle
		}
	case StateJumping:
		if !airborne {
			if mx != 0 {
				c.state = StateRunning
			} else {
				c.state = StateIdle
			}
		}
	default:
		// posture left over from a mode switch; fall back to the
		// grounded defaults
		if airborne {
			c.state = StateJumping
		} else if mx != 0 {
			c.state = StateRunning
		} else {
			c.state = StateIdle
		}
	}
}

// animate advances the walk/run cycle at the profile's interval. Any
// single-frame posture pins the index to 0 and resets the tick, so an
// animated posture always re-enters at its first frame.
func (c *Character) animate() {
	n := frameCount(c.state)
	if n <= 1 {
		c.frame = 0
		c.frameTick = 0
		return
	}
	c.frameTick++
	if c.frameTick >= c.profile.AnimInterval {
		c.frameTick = 0
		c.frame = (c.frame + 1) % n
	}
}
