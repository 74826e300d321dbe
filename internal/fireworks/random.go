package fireworks

import (
	"image/color"
	"math/rand"
)

// RandomSource supplies every random draw the show makes.
type RandomSource interface {
	// Uniform returns a float in [lo, hi).
	Uniform(lo, hi float64) float64
	// IntBetween returns an int in [lo, hi], both ends inclusive.
	IntBetween(lo, hi int) int
	// IntStep returns one of start, start+step, ... strictly below stop.
	IntStep(start, stop, step int) int
	// Pick returns one colour of the palette, uniformly.
	Pick(palette []color.RGBA) color.RGBA
}

// Random is a RandomSource backed by math/rand.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a source seeded with seed. Equal seeds give equal draws.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Uniform(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

func (r *Random) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

func (r *Random) IntStep(start, stop, step int) int {
	n := (stop - start + step - 1) / step
	if n <= 1 {
		return start
	}
	return start + step*r.rng.Intn(n)
}

func (r *Random) Pick(palette []color.RGBA) color.RGBA {
	return palette[r.rng.Intn(len(palette))]
}
