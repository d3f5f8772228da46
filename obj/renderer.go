package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dashkid/assets"
	"github.com/milk9111/dashkid/character"
)

// spriteScale blows the 8x8 bitmaps up to a 32x32 on-screen sprite.
const spriteScale = 4

// Renderer draws the character sprite for the state the last Update
// produced. It only ever writes to the screen; it never touches the
// character.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw picks the sprite for (posture, frame), scales it, flips it when
// the character faces left, and blits it center-anchored at the
// character's position.
func (r *Renderer) Draw(screen *ebiten.Image, c *character.Character) {
	img := assets.Sprite(c.State(), c.Frame())
	fw, _ := assets.Size()

	half := float64(fw*spriteScale) / 2
	drawX := float64(c.X) - half
	drawY := float64(c.Y) - half

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if c.Facing() >= 0 {
		op.GeoM.Scale(spriteScale, spriteScale)
		op.GeoM.Translate(drawX, drawY)
	} else {
		op.GeoM.Scale(-spriteScale, spriteScale)
		op.GeoM.Translate(drawX+float64(fw)*spriteScale, drawY)
	}
	screen.DrawImage(img, op)
}
