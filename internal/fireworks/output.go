package fireworks

import "image/color"

// Canvas receives the draw calls of one frame.
type Canvas interface {
	FillCircle(x, y, radius int, c color.RGBA)
}

// Cue identifies a sound the show asks for.
type Cue int

const (
	CueLiftoff Cue = iota
	CueExplosion
)

func (c Cue) String() string {
	switch c {
	case CueLiftoff:
		return "liftoff"
	case CueExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// AudioSink plays cues without blocking. A cue started on a busy channel
// replaces whatever that channel was playing.
type AudioSink interface {
	PlayOnChannel(channel int, cue Cue)
}
