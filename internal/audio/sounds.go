package audio

import (
	"bytes"
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/fireworks/internal/assets"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

const resampleQuality = 4

var cueFiles = map[fireworks.Cue]string{
	fireworks.CueLiftoff:   assets.LiftoffSound,
	fireworks.CueExplosion: assets.FireworkSound,
}

// decodeSound decodes an embedded WAV into memory at the target sample rate.
func decodeSound(name string, target beep.Format) (*beep.Buffer, error) {
	data, err := assets.Sound(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != target.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, target.SampleRate, streamer)
	}

	buf := beep.NewBuffer(target)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("stream %s: %w", name, err)
	}
	return buf, nil
}

func loadSounds(target beep.Format) (map[fireworks.Cue]*beep.Buffer, error) {
	sounds := make(map[fireworks.Cue]*beep.Buffer, len(cueFiles))
	for cue, name := range cueFiles {
		buf, err := decodeSound(name, target)
		if err != nil {
			return nil, err
		}
		sounds[cue] = buf
	}
	return sounds, nil
}
