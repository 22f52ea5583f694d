package term

import (
	"bytes"
	"strings"
	"testing"

	"chyp8/emu/cpu"
	"chyp8/emu/screen"

	"github.com/retroenv/retrogolib/assert"
)

func TestScreen(t *testing.T) {
	gfx := make([]byte, screen.Size)
	gfx[0] = 1
	gfx[screen.Size-1] = 1

	lines := strings.Split(strings.TrimSuffix(Screen(gfx), "\n"), "\n")
	assert.Equal(t, screen.Height+2, len(lines))
	assert.True(t, strings.HasPrefix(lines[1], "|█ "))
	assert.True(t, strings.HasSuffix(lines[screen.Height], " █|"))
	assert.Equal(t, "|"+strings.Repeat(" ", screen.Width)+"|", lines[2])
}

func TestRegisters(t *testing.T) {
	emu := cpu.New()
	assert.NoError(t, emu.Load([]byte{0x6A, 0x2F, 0x23, 0x00}))
	assert.NoError(t, emu.Tick())
	assert.NoError(t, emu.Tick())

	out := Registers(emu.State())
	assert.True(t, strings.Contains(out, "300"))
	assert.True(t, strings.Contains(out, "2F"))
	assert.True(t, strings.Contains(out, "STACK"))
	assert.True(t, strings.Contains(out, "204"))
	assert.True(t, strings.Contains(out, "running"))
}

func TestPrint(t *testing.T) {
	emu := cpu.New()
	var buf bytes.Buffer
	assert.NoError(t, Print(&buf, emu.State(), emu.Gfx()))
	assert.True(t, strings.Contains(buf.String(), "PC"))
}
