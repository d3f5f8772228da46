// Package obj holds the device-facing collaborators around the
// character core: the keyboard/gamepad sampler and the sprite
// renderer.
package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dashkid/character"
)

// Input polls the keyboard and the first connected gamepad once per
// frame and maps them into a character.Sample.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Sample polls the devices. Keyboard arrows/WASD fold into the 8-way
// direction; the gamepad left stick overrides them when deflected past
// the dead-zone. Dash is Left Shift or the X button, jump is Space or
// the A button, both as single-frame just-pressed signals.
func (i *Input) Sample() character.Sample {
	var mx, my int
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		mx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		mx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		my--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		my++
	}
	dir := character.DirectionFromVector(mx, my)

	dash := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		sx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if d := character.DirectionFromAxes(sx, sy); d != character.Centre {
			dir = d
		}
		dash = dash || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	return character.Sample{Direction: dir, Dash: dash, Jump: jump}
}
