package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/retroenv/retrogolib/assert"
)

func TestTone_SquareWave(t *testing.T) {
	// 4 samples per period
	tone := NewTone(beep.SampleRate(400), 100, 0.5)
	samples := make([][2]float64, 8)

	n, ok := tone.Stream(samples)
	assert.Equal(t, 8, n)
	assert.True(t, ok)
	assert.NoError(t, tone.Err())

	expected := []float64{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i, want := range expected {
		assert.Equal(t, want, samples[i][0])
		assert.Equal(t, want, samples[i][1])
	}
}

func TestTone_PhaseContinues(t *testing.T) {
	tone := NewTone(beep.SampleRate(400), 100, 1)
	first := make([][2]float64, 4)
	tone.Stream(first)

	next := make([][2]float64, 1)
	tone.Stream(next)
	assert.Equal(t, 1.0, next[0][0])
}

func TestOpenClip_Missing(t *testing.T) {
	_, err := openClip(t.TempDir() + "/missing.mp3")
	assert.Error(t, err)
}
