package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
	"github.com/iburimskiy/fireworks/internal/game"
	"github.com/iburimskiy/fireworks/internal/logging"
)

func main() {
	log := logging.New(os.Stderr, zerolog.InfoLevel)

	player, err := audio.NewPlayer(log)
	if err != nil {
		fatal(log, "audio init failed", err)
	}
	defer player.Close()

	gravity := mgl64.Vec2{config.GravityX, config.GravityY}
	show := fireworks.NewShow(config.WindowWidth, config.WindowHeight, gravity,
		fireworks.NewRandom(time.Now().UnixNano()), player, log)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	log.Info().Int("width", config.WindowWidth).Int("height", config.WindowHeight).Msg("show starting")
	if err := ebiten.RunGame(game.NewGame(show, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(log, "show stopped", err)
	}
	log.Info().Int("frames", show.Frame()).Msg("show closed")
}

// fatal reports a startup or platform failure to the user and exits.
func fatal(log zerolog.Logger, msg string, err error) {
	if dlgErr := zenity.Error(fmt.Sprintf("%s: %v", msg, err), zenity.Title("Fireworks"), zenity.ErrorIcon); dlgErr != nil {
		log.Warn().Err(dlgErr).Msg("error dialog unavailable")
	}
	log.Fatal().Err(err).Msg(msg)
}
