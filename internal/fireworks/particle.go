package fireworks

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Particle is a rocket or a spark: a body under gravity with a short
// position history that feeds its trails.
type Particle struct {
	pos    mgl64.Vec2
	origin mgl64.Vec2
	vel    mgl64.Vec2
	acc    mgl64.Vec2

	size   int
	color  color.RGBA
	rocket bool
	age    int
	radius int // sparks only: farthest first-frame travel before the spark is culled

	removed bool

	// newest sample at index 0
	histX [config.HistoryLength]int
	histY [config.HistoryLength]int

	trails [config.TrailCount]Trail

	rng RandomSource
}

// NewRocket creates an undamped launch particle heading straight up.
func NewRocket(x, y float64, c color.RGBA, rng RandomSource) *Particle {
	p := newParticle(x, y, rng)
	p.rocket = true
	p.vel = mgl64.Vec2{0, -float64(rng.IntBetween(config.RocketSpeedMin, config.RocketSpeedMax))}
	p.size = config.RocketSize
	p.color = c
	p.initTrails(TrailClose)
	return p
}

// NewSpark creates a damped explosion particle with a random velocity and a
// colour drawn from palette.
func NewSpark(x, y float64, palette []color.RGBA, rng RandomSource) *Particle {
	p := newParticle(x, y, rng)
	p.radius = rng.IntStep(config.SparkRadiusMin, config.SparkRadiusStop, config.SparkRadiusStep)
	p.vel = mgl64.Vec2{rng.Uniform(-1, 1), rng.Uniform(-1, 1)}.Mul(config.SparkSpeed)
	p.size = rng.IntBetween(config.SparkSizeMin, config.SparkSizeMax)
	p.color = rng.Pick(palette)
	p.initTrails(TrailFar)
	return p
}

func newParticle(x, y float64, rng RandomSource) *Particle {
	p := &Particle{
		pos:    mgl64.Vec2{x, y},
		origin: mgl64.Vec2{x, y},
		rng:    rng,
	}
	for i := range p.histX {
		p.histX[i] = config.HistorySentinel
		p.histY[i] = config.HistorySentinel
	}
	return p
}

func (p *Particle) initTrails(kind TrailKind) {
	for i := range p.trails {
		p.trails[i] = NewTrail(i, p.size, kind)
	}
}

// ApplyForce accumulates f until the next Move.
func (p *Particle) ApplyForce(f mgl64.Vec2) {
	p.acc = p.acc.Add(f)
}

// Move advances the particle one frame.
func (p *Particle) Move() {
	if !p.rocket {
		p.vel = p.vel.Mul(config.SparkDrag)
	}
	p.vel = p.vel.Add(p.acc)
	p.pos = p.pos.Add(p.vel)
	p.acc = mgl64.Vec2{}

	if p.age == 0 && !p.rocket {
		if p.pos.Sub(p.origin).Len() > float64(p.radius) {
			p.removed = true
		}
	}

	p.decay()
	p.recordHistory()
	p.age++
}

// decay burns the particle out at random, more eagerly the older it is.
func (p *Particle) decay() {
	switch {
	case p.age > config.DecayGraceAge && p.age < config.DecayLateAge:
		if p.rng.IntBetween(0, config.DecayEarlyOdds) == 0 {
			p.removed = true
		}
	case p.age > config.DecayLateAge:
		if p.rng.IntBetween(0, config.DecayLateOdds) == 0 {
			p.removed = true
		}
	}
}

func (p *Particle) recordHistory() {
	copy(p.histX[1:], p.histX[:len(p.histX)-1])
	copy(p.histY[1:], p.histY[:len(p.histY)-1])
	p.histX[0] = int(p.pos.X())
	p.histY[0] = int(p.pos.Y())

	for i := range p.trails {
		off := i + p.trails[i].kind.offset()
		p.trails[i].UpdatePosition(p.histX[off], p.histY[off])
	}
}

// Draw renders the trails first, then the body on top.
func (p *Particle) Draw(c Canvas) {
	for i := range p.trails {
		p.trails[i].Draw(c)
	}
	c.FillCircle(int(p.pos.X()), int(p.pos.Y()), p.size, p.color)
}

func (p *Particle) Position() mgl64.Vec2 { return p.pos }

func (p *Particle) Velocity() mgl64.Vec2 { return p.vel }

func (p *Particle) Age() int { return p.age }

func (p *Particle) Removed() bool { return p.removed }
