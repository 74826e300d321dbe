// Package logging builds the zerolog logger shared by the show.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human readable logger writing to w at level and above.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	if _, ok := w.(*os.File); !ok {
		out.NoColor = true
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
