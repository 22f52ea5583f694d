package cpu

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Disassemble(&buf, []byte{0x00, 0xE0, 0x6A, 0x02, 0xD0, 0x15, 0xFF}))

	expected := "200  00E0  CLS\n" +
		"202  6A02  LD VA, 0x02\n" +
		"204  D015  DRW V0, V1, 5\n" +
		"206  FF    DB 0xFF\n"
	assert.Equal(t, expected, buf.String())
}
