package fireworks

import "image/color"

type circle struct {
	x, y, radius int
	color        color.RGBA
}

type recordingCanvas struct {
	circles []circle
}

func (c *recordingCanvas) FillCircle(x, y, radius int, col color.RGBA) {
	c.circles = append(c.circles, circle{x: x, y: y, radius: radius, color: col})
}

type countingAudio struct {
	plays map[int]map[Cue]int
}

func newCountingAudio() *countingAudio {
	return &countingAudio{plays: map[int]map[Cue]int{}}
}

func (a *countingAudio) PlayOnChannel(channel int, cue Cue) {
	if a.plays[channel] == nil {
		a.plays[channel] = map[Cue]int{}
	}
	a.plays[channel][cue]++
}

// fixedRandom answers every draw with its lowest value unless told otherwise.
type fixedRandom struct {
	uniform float64
	ints    []int // consumed in order by IntBetween, then lo
}

func (r *fixedRandom) Uniform(lo, hi float64) float64 { return lo + r.uniform*(hi-lo) }

func (r *fixedRandom) IntBetween(lo, hi int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v
	}
	return lo
}

func (r *fixedRandom) IntStep(start, stop, step int) int { return start }

func (r *fixedRandom) Pick(palette []color.RGBA) color.RGBA { return palette[0] }
