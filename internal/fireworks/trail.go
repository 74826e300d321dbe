package fireworks

import (
	"image/color"

	"github.com/iburimskiy/fireworks/internal/config"
)

// TrailKind selects how far back in a particle's history a trail samples.
type TrailKind int

const (
	// TrailClose hugs the particle: coloured, shrinking with slot, history offset 1.
	TrailClose TrailKind = iota
	// TrailFar lags behind: white, history offset 5.
	TrailFar
)

func (k TrailKind) offset() int {
	if k == TrailClose {
		return config.CloseOffset
	}
	return config.FarOffset
}

// Trail is one lagged afterimage of a particle.
type Trail struct {
	slot  int
	kind  TrailKind
	x, y  int
	color color.RGBA
	size  int
}

func NewTrail(slot, baseSize int, kind TrailKind) Trail {
	t := Trail{
		slot: slot,
		kind: kind,
		x:    config.HistorySentinel,
		y:    config.HistorySentinel,
	}
	if kind == TrailClose {
		t.color = config.TrailColors[slot]
		t.size = int(float64(baseSize) - float64(slot)/2)
	} else {
		t.color = config.TrailWhite
		t.size = max(baseSize-2, 0)
	}
	return t
}

func (t *Trail) UpdatePosition(x, y int) {
	t.x, t.y = x, y
}

func (t *Trail) Position() (int, int) { return t.x, t.y }

func (t *Trail) Size() int { return t.size }

func (t *Trail) Color() color.RGBA { return t.color }

func (t *Trail) Draw(c Canvas) {
	c.FillCircle(t.x, t.y, t.size, t.color)
}
