package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundsEmbedded(t *testing.T) {
	for _, name := range []string{FireworkSound, LiftoffSound} {
		data, err := Sound(name)
		require.NoError(t, err, name)
		assert.Equal(t, "RIFF", string(data[:4]))
		assert.Equal(t, "WAVE", string(data[8:12]))
	}
}

func TestSoundMissing(t *testing.T) {
	_, err := Sound("nope.wav")
	assert.Error(t, err)
}
