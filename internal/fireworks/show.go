package fireworks

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Show owns the active fireworks. It is driven by one goroutine, one Step
// per frame.
type Show struct {
	width, height int
	gravity       mgl64.Vec2

	fireworks []*Firework
	frame     int

	rng   RandomSource
	audio AudioSink
	log   zerolog.Logger
}

// NewShow returns a show over a width x height area with the opening
// fireworks already launched.
func NewShow(width, height int, gravity mgl64.Vec2, rng RandomSource, audio AudioSink, log zerolog.Logger) *Show {
	s := &Show{
		width:   width,
		height:  height,
		gravity: gravity,
		rng:     rng,
		audio:   audio,
		log:     log,
	}
	for range config.InitialFireworks {
		s.Launch()
	}
	return s
}

// Launch starts a firework at a random grid column on the bottom edge.
func (s *Show) Launch() *Firework {
	x := s.rng.IntStep(config.SpawnMargin, s.width-config.SpawnMargin, config.SpawnGrid)
	return s.LaunchAt(float64(x))
}

// LaunchAt starts a firework at x on the bottom edge.
func (s *Show) LaunchAt(x float64) *Firework {
	fw := NewFirework(x, float64(s.height), s.rng, s.audio)
	s.fireworks = append(s.fireworks, fw)
	s.log.Debug().Float64("x", x).Int("active", len(s.fireworks)).Msg("firework launched")
	return fw
}

// Step runs one frame: maybe launch, update everything, drop what is done.
func (s *Show) Step() {
	if s.rng.IntBetween(0, config.SpawnOutcomes-1) == 0 {
		s.Launch()
	}

	live := s.fireworks[:0]
	for _, fw := range s.fireworks {
		before := fw.State()
		fw.Update(s.gravity)
		if before == Ascending && fw.State() == Exploded {
			s.log.Debug().Int("frame", s.frame).Int("sparks", fw.SparkCount()).Msg("firework exploded")
		}
		if fw.Finished() {
			s.log.Debug().Int("frame", s.frame).Msg("firework burnt out")
			continue
		}
		live = append(live, fw)
	}
	clear(s.fireworks[len(live):])
	s.fireworks = live
	s.frame++
}

func (s *Show) Draw(c Canvas) {
	for _, fw := range s.fireworks {
		fw.Draw(c)
	}
}

// Fireworks returns the active fireworks. The slice is only valid until the
// next Step.
func (s *Show) Fireworks() []*Firework { return s.fireworks }

// SparkCount is the number of live sparks across all fireworks.
func (s *Show) SparkCount() int {
	n := 0
	for _, fw := range s.fireworks {
		n += fw.SparkCount()
	}
	return n
}

func (s *Show) Frame() int { return s.frame }
