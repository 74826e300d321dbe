package fireworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fireworks/internal/config"
)

func TestNewFireworkIsAscending(t *testing.T) {
	audio := newCountingAudio()
	fw := NewFirework(400, 1000, NewRandom(1), audio)

	assert.Equal(t, Ascending, fw.State())
	assert.False(t, fw.Finished())
	assert.Zero(t, fw.SparkCount())
	assert.Equal(t, 1, audio.plays[config.LiftoffChannel][CueLiftoff])
	assert.Zero(t, audio.plays[config.ExplosionChannel][CueExplosion])
	assert.Contains(t, config.ExplosionHues[:], fw.palette[0])
	assert.Equal(t, config.Unlit, fw.palette[1])
	assert.Equal(t, config.Unlit, fw.palette[2])
}

func TestExplode(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		audio := newCountingAudio()
		fw := NewFirework(400, 1000, NewRandom(seed), audio)
		fw.Explode()

		require.Equal(t, Exploded, fw.State())
		n := fw.SparkCount()
		assert.GreaterOrEqual(t, n, config.SparkMin)
		assert.LessOrEqual(t, n, config.SparkMax)
		assert.Equal(t, n, audio.plays[config.ExplosionChannel][CueExplosion])
		for _, s := range fw.sparks {
			assert.Equal(t, fw.rocket.pos, s.origin)
			assert.Contains(t, fw.palette[:], s.color)
		}

		fw.Explode()
		assert.Equal(t, n, fw.SparkCount())
	}
}

func TestSparksOutsideRadiusAreCulled(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(99), newCountingAudio())
	fw.Explode()
	fw.Update(gravity)

	culled := 0
	for _, s := range fw.sparks {
		if s.pos.Sub(s.origin).Len() > float64(s.radius) {
			assert.True(t, s.Removed())
			culled++
		}
	}
	assert.Positive(t, culled)
}

func TestFireworkExplodesNearApex(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(4), newCountingAudio())
	frames := 0
	for fw.State() == Ascending {
		assert.Less(t, fw.rocket.vel.Y(), config.ExplodeSpeed)
		fw.Update(gravity)
		frames++
		require.Less(t, frames, 120)
	}
	assert.GreaterOrEqual(t, fw.rocket.vel.Y(), config.ExplodeSpeed)
	assert.Positive(t, fw.SparkCount())
}

func TestRocketFrozenAfterExplosion(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(4), newCountingAudio())
	fw.Explode()
	pos := fw.rocket.pos
	for range 5 {
		fw.Update(gravity)
	}
	assert.Equal(t, pos, fw.rocket.pos)
}

func TestFinishedPrunesSparks(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(8), newCountingAudio())
	fw.Explode()
	fw.Update(gravity)

	live := 0
	for _, s := range fw.sparks {
		if !s.Removed() {
			live++
		}
	}
	assert.False(t, fw.Finished())
	assert.Equal(t, live, fw.SparkCount())
	for _, s := range fw.sparks {
		assert.False(t, s.Removed())
	}
}

func TestFireworkBurnsOut(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(21), newCountingAudio())
	fw.Explode()

	finished := false
	for range 300 {
		fw.Update(gravity)
		if fw.Finished() {
			finished = true
			break
		}
	}
	assert.True(t, finished)
	assert.Zero(t, fw.SparkCount())
}

func TestEverySparkBurnsOutByAge200(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(77), newCountingAudio())
	fw.Explode()
	sparks := append([]*Particle(nil), fw.sparks...)
	for range 201 {
		fw.Update(gravity)
	}
	for _, s := range sparks {
		assert.True(t, s.Removed())
	}
	assert.True(t, fw.Finished())
}

func TestFireworkDraw(t *testing.T) {
	fw := NewFirework(400, 1000, NewRandom(3), newCountingAudio())
	c := &recordingCanvas{}
	fw.Draw(c)
	assert.Len(t, c.circles, config.TrailCount+1)

	fw.Explode()
	c = &recordingCanvas{}
	fw.Draw(c)
	assert.Len(t, c.circles, fw.SparkCount()*(config.TrailCount+1))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "exploded", Exploded.String())
}
