package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"spaceinvaders/game"
	"spaceinvaders/world"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})

	if err := run(os.Args[1:], logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal("exit", "err", err)
	}
}

// run sets up and plays one session. Deferred cleanup such as the profiler
// has finished by the time it returns, so main can exit non-zero safely.
func run(args []string, logger *log.Logger) error {
	config := game.DefaultConfig()

	fs := flag.NewFlagSet("invaders", flag.ContinueOnError)
	assetDir := fs.String("assets", config.Assets.Dir, "directory containing sprites, font and sounds")
	fontFile := fs.String("font", "", "TTF/OTF font file (default: embedded Go Bold)")
	steering := fs.String("steering", config.World.Steering.String(), "ship steering model: additive or held")
	seed := fs.Int64("seed", 0, "seed for enemy placement (0 = random)")
	mute := fs.Bool("mute", false, "disable sound effects")
	keyRepeat := fs.Bool("key-repeat", false, "repeat fire while space is held")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	cpuProfile := fs.String("cpuprofile", "", "write a CPU profile and trace to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}
	logger.SetLevel(level)

	mode, err := world.ParseSteeringMode(*steering)
	if err != nil {
		return err
	}
	config.World.Steering = mode
	config.Assets.Dir = *assetDir
	config.Assets.Font = *fontFile
	config.Seed = *seed
	config.Mute = *mute
	config.KeyRepeat = *keyRepeat

	if *cpuProfile != "" {
		profiler, err := game.StartProfiler(*cpuProfile, logger)
		if err != nil {
			return err
		}
		defer profiler.Stop()
	}

	assets, err := game.LoadAssets(config.Assets)
	if err != nil {
		return fmt.Errorf("load assets from %s: %w", config.Assets.Dir, err)
	}
	logger.Debug("assets loaded", "dir", config.Assets.Dir)

	var sound game.Sound = game.NopSound{}
	if !config.Mute {
		s, err := game.NewAudioSound(config.Assets.Dir, logger)
		if err != nil {
			return fmt.Errorf("init audio: %w", err)
		}
		sound = s
	}

	g, err := game.NewGame(config,
		game.WithAssets(assets),
		game.WithSound(sound),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.World.ScreenWidth, config.World.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
