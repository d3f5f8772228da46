// Package assets holds the character's 8x8 sprites. The bitmaps live
// here as row bitmasks and are rasterized into ebiten images on first
// use; the rest of the app treats them as opaque drawing resources.
package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dashkid/character"
)

// Each sprite is 8 rows of 8 pixels, one bit per pixel, MSB leftmost.
type mask [8]uint8

var (
	idleMask = mask{0x3C, 0x3C, 0x66, 0x7E, 0x42, 0x42, 0x24, 0x24}

	walkMasks = [2]mask{
		{0x3C, 0x3C, 0x66, 0x7E, 0x46, 0x48, 0x34, 0x22},
		{0x3C, 0x3C, 0x66, 0x7E, 0x60, 0x48, 0x26, 0x12},
	}

	// speed lines around the body
	dashMask = mask{0x66, 0x81, 0xBD, 0x24, 0x24, 0xBD, 0x81, 0x66}

	// legs tucked mid-air
	jumpMask = mask{0x3C, 0x3C, 0x66, 0x7E, 0x42, 0x7E, 0x18, 0x00}
)

var (
	idleImg *ebiten.Image
	walkImg [2]*ebiten.Image
	dashImg *ebiten.Image
	jumpImg *ebiten.Image
)

func rasterize(m mask, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m[y]&(0x80>>x) != 0 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

func ensure() {
	if idleImg != nil {
		return
	}
	body := colornames.Crimson
	idleImg = rasterize(idleMask, body)
	walkImg[0] = rasterize(walkMasks[0], body)
	walkImg[1] = rasterize(walkMasks[1], body)
	dashImg = rasterize(dashMask, colornames.Gold)
	jumpImg = rasterize(jumpMask, body)
}

// Sprite returns the image for a posture and animation frame index.
// Unknown postures fall back to the idle sprite; the frame index is
// wrapped so any value is safe.
func Sprite(s character.State, frame int) *ebiten.Image {
	ensure()
	switch s {
	case character.StateWalking, character.StateRunning:
		if frame < 0 {
			frame = 0
		}
		return walkImg[frame%len(walkImg)]
	case character.StateDashing:
		return dashImg
	case character.StateJumping:
		return jumpImg
	default:
		return idleImg
	}
}

// Size returns the unscaled sprite dimensions.
func Size() (int, int) { return 8, 8 }
