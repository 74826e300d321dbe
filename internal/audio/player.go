package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// Player plays show cues through the speaker on a fixed set of channels.
type Player struct {
	format   beep.Format
	channels [config.AudioChannels]*channel
	sounds   map[fireworks.Cue]*beep.Buffer
	log      zerolog.Logger
}

// NewPlayer decodes the embedded sounds and opens the speaker. Either
// failing leaves the show without audio, which the caller treats as fatal.
func NewPlayer(log zerolog.Logger) (*Player, error) {
	format := beep.Format{SampleRate: config.SampleRate, NumChannels: 2, Precision: 2}
	p, err := newPlayer(format, log)
	if err != nil {
		return nil, err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	streamers := make([]beep.Streamer, 0, len(p.channels))
	for _, ch := range p.channels {
		streamers = append(streamers, ch)
	}
	speaker.Play(streamers...)

	log.Info().Int("sample_rate", int(format.SampleRate)).Int("channels", len(p.channels)).Msg("audio ready")
	return p, nil
}

func newPlayer(format beep.Format, log zerolog.Logger) (*Player, error) {
	sounds, err := loadSounds(format)
	if err != nil {
		return nil, fmt.Errorf("load sounds: %w", err)
	}
	p := &Player{
		format: format,
		sounds: sounds,
		log:    log,
	}
	for i := range p.channels {
		p.channels[i] = &channel{}
	}
	return p, nil
}

// PlayOnChannel starts cue on the channel, cutting off what was playing there.
// It never blocks on playback.
func (p *Player) PlayOnChannel(ch int, cue fireworks.Cue) {
	if ch < 0 || ch >= len(p.channels) {
		p.log.Warn().Int("channel", ch).Stringer("cue", cue).Msg("no such audio channel")
		return
	}
	buf, ok := p.sounds[cue]
	if !ok {
		p.log.Warn().Stringer("cue", cue).Msg("no sound for cue")
		return
	}
	p.channels[ch].play(buf.Streamer(0, buf.Len()))
}

// Close silences the speaker.
func (p *Player) Close() {
	speaker.Clear()
}
