// Package assets embeds the show's sound effects.
package assets

import "embed"

const (
	FireworkSound = "firework.wav"
	LiftoffSound  = "liftoff.wav"
)

//go:embed sounds/*.wav
var sounds embed.FS

// Sound returns the raw bytes of the named embedded sound.
func Sound(name string) ([]byte, error) {
	return sounds.ReadFile("sounds/" + name)
}
