package driver

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLayout_CoversKeypad(t *testing.T) {
	seen := map[int]bool{}
	chars := map[rune]bool{}
	for _, b := range Layout {
		seen[b.Key] = true
		chars[b.Char] = true
	}
	assert.Equal(t, 16, len(seen))
	assert.Equal(t, 16, len(chars))
	for key := 0; key < 16; key++ {
		assert.True(t, seen[key])
	}
}
