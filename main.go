package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/systems"
)

var (
	configPath = flag.String("config", "", "path to a JSON game config")
	seed       = flag.Int64("seed", 0, "level generation seed, overrides the config (0 keeps it)")
	headless   = flag.Bool("headless", false, "let a bot play without opening a window")
	maxLevels  = flag.Int("levels", 0, "headless: stop once this level is reached (0 plays until starving)")
	verbose    = flag.Bool("verbose", false, "log every move")
)

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("invalid config")
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	catalog := data.DefaultTileCatalog()
	if cfg.TileDir != "" {
		if err := catalog.LoadTemplatesFromDirectory(cfg.TileDir); err != nil {
			log.WithError(err).Fatal("failed to load tile templates")
		}
	}

	if *headless {
		if err := runHeadless(cfg, catalog, log); err != nil {
			log.WithError(err).Fatal("headless run failed")
		}
		return
	}

	game := NewGame(cfg, catalog, log)
	width, height := config.GetWindowSize(cfg.Board.Columns, cfg.Board.Rows)
	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetWindowTitle("Scavenger")
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}

// runHeadless plays one session with the autoplay bot until it starves, reaches the level
// limit or the process is interrupted
func runHeadless(cfg config.GameConfig, catalog *data.TileCatalog, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bot := func(world *ecs.World, state *components.GameState) systems.InputSource {
		return systems.NewAutoplayInput(world, state)
	}
	s, err := newSession(cfg, catalog, bot, systems.LogEffectHook{Log: log}, log)
	if err != nil {
		return err
	}

	result, err := systems.RunHeadless(ctx, s.scheduler, s.state, systems.HeadlessOptions{MaxLevels: *maxLevels}, log)
	if err != nil {
		return err
	}
	fmt.Printf("level %d, food %d, over %t\n", result.Level, result.Food, result.Over)
	if result.Over {
		fmt.Println(s.messages.Last())
	}
	return nil
}
