package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dashkid/character"
	"github.com/milk9111/dashkid/obj"
	"github.com/milk9111/dashkid/profiles"
)

const (
	// logical screen, matching the 240x240 display the sprites were
	// drawn for
	baseWidth  = 240
	baseHeight = 240

	windowWidth  = 720
	windowHeight = 720
)

// Source is anything that yields one input sample per frame: the
// keyboard/gamepad sampler or the scripted demo driver.
type Source interface {
	Sample() character.Sample
}

type Game struct {
	frames int
	debug  bool
	paused bool

	source   Source
	char     *character.Character
	renderer *obj.Renderer

	profilePath string
	watcher     *profiles.Watcher
	pauseUI     *ebitenui.UI
}

func NewGame(char *character.Character, source Source, debug bool) *Game {
	g := &Game{
		debug:    debug,
		source:   source,
		char:     char,
		renderer: obj.NewRenderer(),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// WatchProfile starts reloading tuning constants whenever the given
// profile file changes on disk.
func (g *Game) WatchProfile(path string) error {
	w, err := profiles.NewWatcher(path)
	if err != nil {
		return err
	}
	g.profilePath = path
	g.watcher = w
	return nil
}

func (g *Game) CloseWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// drainReloads applies any pending profile edits. A bad edit keeps the
// last good profile and logs instead of killing the session.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case <-g.watcher.Events:
			p, err := profiles.LoadFile(g.profilePath)
			if err != nil {
				log.Printf("profile reload skipped: %v", err)
				continue
			}
			if err := g.char.SetProfile(p); err != nil {
				log.Printf("profile reload skipped: %v", err)
				continue
			}
			log.Printf("profile reloaded from %s", g.profilePath)
		case err := <-g.watcher.Errors:
			log.Printf("profile watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		// the character is not updated while paused, so it stays
		// frame-exact across a pause
		g.pauseUI.Update()
		return nil
	}

	g.drainReloads()

	g.frames++
	g.char.Update(g.source.Sample())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	prof := g.char.Profile()
	if prof.Mode == character.ModePlatform {
		// ground line sits under the character's feet (center + half
		// the scaled sprite)
		groundTop := float32(prof.GroundY + 16)
		vector.DrawFilledRect(screen, 0, groundTop, baseWidth, baseHeight-groundTop, colornames.Darkolivegreen, false)
	}

	g.renderer.Draw(screen, g.char)

	if g.debug {
		x, y := g.char.X, g.char.Y
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %s  frame: %d", g.char.State(), g.char.Frame()), 0, 16)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos: (%d,%d)  vy: %.2f  dash: %d", x, y, g.char.VelY(), g.char.DashFrames()), 0, 32)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
