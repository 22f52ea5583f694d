// Package window renders the display with pixel and reads the keypad from
// the host keyboard. It must be used from the pixelgl.Run main thread.
package window

import (
	"fmt"
	"image/color"

	"chyp8/emu/driver"
	"chyp8/emu/screen"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
)

var buttons = map[rune]pixelgl.Button{
	'1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3, '4': pixelgl.Key4,
	'Q': pixelgl.KeyQ, 'W': pixelgl.KeyW, 'E': pixelgl.KeyE, 'R': pixelgl.KeyR,
	'A': pixelgl.KeyA, 'S': pixelgl.KeyS, 'D': pixelgl.KeyD, 'F': pixelgl.KeyF,
	'Z': pixelgl.KeyZ, 'X': pixelgl.KeyX, 'C': pixelgl.KeyC, 'V': pixelgl.KeyV,
}

type Config struct {
	Title      string
	Scale      float64
	Foreground color.Color
	Background color.Color
}

type Window struct {
	*pixelgl.Window
	KeyMap map[int]pixelgl.Button

	// called on the Backspace and P hot keys
	OnReset func()
	OnPause func()

	imd   *imdraw.IMDraw
	scale float64
	bg    color.Color
}

func New(cfg Config) (*Window, error) {
	wcfg := pixelgl.WindowConfig{
		Title:  cfg.Title,
		Bounds: pixel.R(0, 0, screen.Width*cfg.Scale, screen.Height*cfg.Scale),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(wcfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	keyMap := make(map[int]pixelgl.Button, len(driver.Layout))
	for _, b := range driver.Layout {
		keyMap[b.Key] = buttons[b.Char]
	}

	imd := imdraw.New(nil)
	imd.Color = cfg.Foreground

	return &Window{
		Window: win,
		KeyMap: keyMap,
		imd:    imd,
		scale:  cfg.Scale,
		bg:     cfg.Background,
	}, nil
}

func (w *Window) PollKeys(set func(key int, pressed bool)) {
	if w.JustPressed(pixelgl.KeyEscape) {
		w.SetClosed(true)
	}
	if w.JustPressed(pixelgl.KeyBackspace) && w.OnReset != nil {
		w.OnReset()
	}
	if w.JustPressed(pixelgl.KeyP) && w.OnPause != nil {
		w.OnPause()
	}

	for key, button := range w.KeyMap {
		set(key, w.Pressed(button))
	}
}

// Draw rebuilds the lit pixel rectangles. Row 0 is at the top of the window
// while pixel's origin is bottom left.
func (w *Window) Draw(gfx []byte) {
	w.imd.Clear()
	s := w.scale
	for i, p := range gfx {
		if p == 0 {
			continue
		}
		x := float64(i % screen.Width)
		y := float64(screen.Height - 1 - i/screen.Width)
		w.imd.Push(pixel.V(x*s, y*s), pixel.V((x+1)*s, (y+1)*s))
		w.imd.Rectangle(0)
	}
}

// Update paints the last drawn frame and swaps buffers.
func (w *Window) Update() {
	w.Clear(w.bg)
	w.imd.Draw(w.Window)
	w.Window.Update()
}
