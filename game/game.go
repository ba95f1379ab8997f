// Package game runs the world inside an ebiten window: input, rendering,
// assets and sound effects.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"spaceinvaders/world"
)

// Game implements ebiten.Game around a world.World
type Game struct {
	world    *world.World
	renderer *Renderer
	input    InputSource
	sound    Sound
	logger   *log.Logger
	config   Config
	debug    DebugState

	explosions *Explosions

	assets    *Assets
	rng       *rand.Rand
	sessionID string
	startTime time.Time
	shots     int
}

// Option customizes a Game
type Option func(*Game)

// WithAssets sets the sprites and font; without it shapes and the debug font are drawn
func WithAssets(a *Assets) Option {
	return func(g *Game) { g.assets = a }
}

// WithInput replaces the keyboard as input source
func WithInput(in InputSource) Option {
	return func(g *Game) { g.input = in }
}

// WithSound sets the sound effect player
func WithSound(s Sound) Option {
	return func(g *Game) { g.sound = s }
}

// WithLogger sets the logger; a session id is attached to it
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand sets the random source used for enemy placement
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// NewGame creates a game instance
func NewGame(config Config, opts ...Option) (*Game, error) {
	g := &Game{
		config:    config,
		sound:     NopSound{},
		logger:    log.Default(),
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	if g.input == nil {
		g.input = NewKeyboardInput(config)
	}
	g.logger = g.logger.With("session", g.sessionID)

	w, err := world.New(config.World, g.rng)
	if err != nil {
		return nil, err
	}
	g.world = w
	g.renderer = NewRenderer(config, g.assets)
	g.explosions = NewExplosions(rand.New(rand.NewSource(time.Now().UnixNano())))

	g.logger.Info("session started",
		"enemies", config.World.EnemyCount,
		"steering", config.World.Steering,
		"tps", config.TPS,
	)
	return g, nil
}

// World returns the simulation
func (g *Game) World() *world.World {
	return g.world
}

// Update advances the game by one tick
func (g *Game) Update() error {
	in := g.input.Poll()

	if in.ToggleDebug {
		g.debug.Toggle()
		g.logger.Debug("debug overlay", "enabled", g.debug.ShowHitboxes)
	}
	if in.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if in.FocusLost && g.config.World.Steering == world.SteeringHeld {
		g.world.ReleaseKeys()
	}

	report := g.world.Step(in.Events)
	g.explosions.Update()
	g.handleReport(report)

	if report.Quit {
		g.logger.Info("quit",
			"score", g.world.Score(),
			"shots", g.shots,
			"played", time.Since(g.startTime).Round(time.Second),
		)
		return ebiten.Termination
	}
	return nil
}

// handleReport turns world outcomes into sound cues and log lines
func (g *Game) handleReport(r world.Report) {
	for i := 0; i < r.Shots; i++ {
		g.sound.Play(CueShoot)
	}
	g.shots += r.Shots

	for i := 0; i < r.Hits; i++ {
		g.sound.Play(CueHit)
	}
	for _, at := range r.HitAt {
		g.explosions.Emit(at, g.renderer.EnemyHalfSize())
	}
	if r.Hits > 0 {
		g.logger.Debug("enemy hit", "hits", r.Hits, "score", g.world.Score())
	}

	if r.GameOver {
		g.sound.Play(CueGameOver)
		g.logger.Info("game over", "score", g.world.Score(), "frame", g.world.Frame())
	}
	if r.Restarted {
		g.shots = 0
		g.startTime = time.Now()
		g.explosions.Reset()
		g.logger.Info("restart")
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, g.explosions, &g.debug)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.World.ScreenWidth, g.config.World.ScreenHeight
}
