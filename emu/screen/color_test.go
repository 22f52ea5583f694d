package screen

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"golang.org/x/image/colornames"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Lime ")
	assert.NoError(t, err)
	assert.Equal(t, colornames.Lime, c)

	_, err = ParseColor("not-a-colour")
	assert.Error(t, err)
}

func TestRGBA(t *testing.T) {
	fg := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	bg := color.RGBA{R: 9, G: 8, B: 7, A: 6}

	buf := RGBA(nil, []byte{1, 0}, fg, bg)
	assert.Equal(t, []byte{1, 2, 3, 4, 9, 8, 7, 6}, buf)

	reused := RGBA(buf, []byte{0, 0}, fg, bg)
	assert.Equal(t, []byte{9, 8, 7, 6, 9, 8, 7, 6}, reused)
}
