package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas draws the show onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillCircle(x, y, radius int, col color.RGBA) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), col, true)
}
