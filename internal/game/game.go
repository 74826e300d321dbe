package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// Game runs a fireworks show inside ebiten's loop: one Step per tick.
type Game struct {
	show *fireworks.Show
	log  zerolog.Logger

	ticks int // advanced ticks, excluding paused ones

	// input edge detection
	prevKey map[ebiten.Key]bool

	paused  bool
	showHUD bool
}

func NewGame(show *fireworks.Show, log zerolog.Logger) *Game {
	return &Game{
		show:    show,
		log:     log,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.log.Info().Int("frame", g.show.Frame()).Msg("quit requested")
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		g.launchAt(x)
	}

	g.advance()
	return nil
}

// advance steps the show by one tick unless paused.
func (g *Game) advance() {
	if g.paused {
		return
	}
	g.show.Step()
	g.ticks++
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / config.TPS
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.log.Info().Bool("paused", g.paused).Msg("pause toggled")
}

// launchAt starts a firework from the grid column nearest to x.
func (g *Game) launchAt(x int) {
	col := (x + config.SpawnGrid/2) / config.SpawnGrid * config.SpawnGrid
	col = min(max(col, config.SpawnMargin), config.WindowWidth-config.SpawnMargin)
	g.show.LaunchAt(float64(col))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	g.show.Draw(imageCanvas{dst: screen})

	if g.showHUD {
		status := hudStatus(len(g.show.Fireworks()), g.show.SparkCount(), g.elapsed(), g.paused)
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
