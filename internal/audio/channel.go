package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// channel is an endless streamer that plays at most one sound at a time.
// Starting a sound cuts off the one already playing. When idle it streams
// silence so the speaker keeps it.
type channel struct {
	source beep.Streamer
	mu     sync.Mutex
}

func (c *channel) play(s beep.Streamer) {
	c.mu.Lock()
	c.source = s
	c.mu.Unlock()
}

func (c *channel) busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source != nil
}

func (c *channel) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	if c.source != nil {
		var ok bool
		n, ok = c.source.Stream(samples)
		if !ok || n < len(samples) {
			c.source = nil
		}
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (c *channel) Err() error { return nil }
