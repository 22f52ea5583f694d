package screen

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves an SVG colour name such as "lime" or "black".
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour name '%s'", name)
	}
	return c, nil
}

// RGBA expands a 0/1 pixel grid into an RGBA byte buffer of Width*Height*4
// bytes, reusing buf when it is large enough.
func RGBA(buf []byte, gfx []byte, fg, bg color.RGBA) []byte {
	if cap(buf) < len(gfx)*4 {
		buf = make([]byte, len(gfx)*4)
	}
	buf = buf[:len(gfx)*4]
	for i, p := range gfx {
		c := bg
		if p != 0 {
			c = fg
		}
		buf[i*4] = c.R
		buf[i*4+1] = c.G
		buf[i*4+2] = c.B
		buf[i*4+3] = c.A
	}
	return buf
}
