// Package desktop runs the interpreter inside an ebiten game loop.
package desktop

import (
	"errors"
	"image/color"

	"chyp8/emu/cpu"
	"chyp8/emu/driver"
	"chyp8/emu/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = map[rune]ebiten.Key{
	'1': ebiten.Key1, '2': ebiten.Key2, '3': ebiten.Key3, '4': ebiten.Key4,
	'Q': ebiten.KeyQ, 'W': ebiten.KeyW, 'E': ebiten.KeyE, 'R': ebiten.KeyR,
	'A': ebiten.KeyA, 'S': ebiten.KeyS, 'D': ebiten.KeyD, 'F': ebiten.KeyF,
	'Z': ebiten.KeyZ, 'X': ebiten.KeyX, 'C': ebiten.KeyC, 'V': ebiten.KeyV,
}

type Config struct {
	Scale      int
	Foreground color.RGBA
	Background color.RGBA
}

type Game struct {
	emu *cpu.EMU
	drv *driver.Driver
	rom []byte
	cfg Config

	img    *ebiten.Image // reused 64x32 canvas
	pixels []byte
	status string
}

// New returns a game for an interpreter that already has rom loaded. The
// rom is kept for the reset hot key.
func New(emu *cpu.EMU, drv *driver.Driver, rom []byte, cfg Config) *Game {
	if cfg.Scale <= 0 {
		cfg.Scale = 10
	}
	return &Game{
		emu: emu,
		drv: drv,
		rom: rom,
		cfg: cfg,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.drv.SetPaused(!g.drv.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.emu.Load(g.rom); err != nil {
			return err
		}
		g.status = ""
	}

	for _, b := range driver.Layout {
		g.emu.SetKey(b.Key, ebiten.IsKeyPressed(keys[b.Char]))
	}

	if g.emu.Halted() {
		return nil
	}
	if err := g.drv.Frame(); err != nil {
		if !errors.Is(err, cpu.ErrHalted) {
			// keep the window open on the last frame so the fault can be seen
			g.status = err.Error()
		}
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(screen.Width, screen.Height)
	}
	if g.pixels == nil || g.emu.DrawFlag() {
		g.pixels = screen.RGBA(g.pixels, g.emu.Gfx(), g.cfg.Foreground, g.cfg.Background)
		g.img.WritePixels(g.pixels)
		g.emu.ClearDrawFlag()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	dst.DrawImage(g.img, op)

	switch {
	case g.status != "":
		ebitenutil.DebugPrint(dst, g.status)
	case g.drv.Paused():
		ebitenutil.DebugPrint(dst, "PAUSED")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screen.Width * g.cfg.Scale, screen.Height * g.cfg.Scale
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string, refresh int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(screen.Width*g.cfg.Scale, screen.Height*g.cfg.Scale)
	ebiten.SetTPS(refresh)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
