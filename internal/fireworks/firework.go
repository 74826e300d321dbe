package fireworks

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/fireworks/internal/config"
)

type State int

const (
	Ascending State = iota
	Exploded
)

func (s State) String() string {
	if s == Exploded {
		return "exploded"
	}
	return "ascending"
}

// Firework is a rocket that climbs until it stalls near its apex, then
// bursts into sparks. It is done once every spark has burnt out.
type Firework struct {
	rocket  *Particle
	state   State
	sparks  []*Particle
	palette [3]color.RGBA

	rng   RandomSource
	audio AudioSink
}

// NewFirework launches a rocket from (x, y). The liftoff cue plays once.
func NewFirework(x, y float64, rng RandomSource, audio AudioSink) *Firework {
	f := &Firework{
		palette: [3]color.RGBA{rng.Pick(config.ExplosionHues[:]), config.Unlit, config.Unlit},
		rng:     rng,
		audio:   audio,
	}
	f.rocket = NewRocket(x, y, config.RocketColor, rng)
	audio.PlayOnChannel(config.LiftoffChannel, CueLiftoff)
	return f
}

// Update advances the rocket or, after the burst, every spark.
func (f *Firework) Update(gravity mgl64.Vec2) {
	switch f.state {
	case Ascending:
		f.rocket.ApplyForce(gravity)
		f.rocket.Move()
		if f.rocket.vel.Y() >= config.ExplodeSpeed {
			f.Explode()
		}
	case Exploded:
		for _, s := range f.sparks {
			s.ApplyForce(mgl64.Vec2{
				gravity.X() + f.rng.Uniform(-1, 1)/config.SparkJitterX,
				gravity.Y()/2 + float64(f.rng.IntBetween(config.SparkJitterYMin, config.SparkJitterYMax))/config.SparkJitterScale,
			})
			s.Move()
		}
	}
}

// Explode bursts the rocket where it is. Later calls do nothing.
func (f *Firework) Explode() {
	if f.state == Exploded {
		return
	}
	f.state = Exploded

	n := f.rng.IntBetween(config.SparkMin, config.SparkMax)
	at := f.rocket.pos
	f.sparks = make([]*Particle, 0, n)
	for range n {
		f.sparks = append(f.sparks, NewSpark(at.X(), at.Y(), f.palette[:], f.rng))
		f.audio.PlayOnChannel(config.ExplosionChannel, CueExplosion)
	}
}

// Finished drops burnt out sparks and reports whether none are left.
// A firework that has not exploded is never finished.
func (f *Firework) Finished() bool {
	if f.state != Exploded {
		return false
	}
	f.pruneSparks()
	return len(f.sparks) == 0
}

func (f *Firework) pruneSparks() {
	live := f.sparks[:0]
	for _, s := range f.sparks {
		if !s.removed {
			live = append(live, s)
		}
	}
	clear(f.sparks[len(live):])
	f.sparks = live
}

func (f *Firework) Draw(c Canvas) {
	if f.state == Ascending {
		f.rocket.Draw(c)
		return
	}
	for _, s := range f.sparks {
		s.Draw(c)
	}
}

func (f *Firework) State() State { return f.state }

func (f *Firework) Rocket() *Particle { return f.rocket }

func (f *Firework) SparkCount() int { return len(f.sparks) }
