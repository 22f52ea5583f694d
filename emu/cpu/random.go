package cpu

import (
	"math/rand"
	"time"
)

// RandomSource supplies the bytes consumed by RND.
type RandomSource interface {
	Byte() uint8
}

type mathRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a RandomSource backed by math/rand.
func NewRandom(seed int64) RandomSource {
	return &mathRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *mathRandom) Byte() uint8 {
	return uint8(r.rnd.Intn(256))
}

func defaultRandom() RandomSource {
	return NewRandom(time.Now().UnixNano())
}
