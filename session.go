package main

import (
	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
	"ebiten-scavenger/spawners"
	"ebiten-scavenger/systems"
)

// session is one run from level 1 to game over
type session struct {
	world     *ecs.World
	state     *components.GameState
	scheduler *systems.TurnScheduler
	messages  *systems.MessageLog
}

// inputFactory lets the headless bot read the session's own world
type inputFactory func(world *ecs.World, state *components.GameState) systems.InputSource

// newSession wires the systems for a run and loads the first level
func newSession(cfg config.GameConfig, catalog *data.TileCatalog, newInput inputFactory, hook systems.EffectHook, log logrus.FieldLogger) (*session, error) {
	world := ecs.NewWorld()
	state := components.NewGameState(cfg.Player.StartingFood)

	generator := generation.NewBoardGenerator(cfg.Board, generation.TileKindsFromCatalog(catalog))
	if cfg.Seed != 0 {
		generator.SetSeed(cfg.Seed)
	}
	spawner := spawners.NewEntitySpawner(world, catalog, state.Enemies, cfg, log)
	levels := systems.NewLevelSystem(world, state, generator, spawner, log)

	movement := systems.NewMovementSystem()
	player := systems.NewPlayerController(world, state, movement, log)
	enemies := systems.NewEnemyController(world, state, movement, log)

	messages := systems.NewMessageLog()
	messages.Initialize(world)
	systems.NewEffectSystem(hook, state).Initialize(world)

	scheduler := systems.NewTurnScheduler(world, state, player, enemies, newInput(world, state), levels, cfg.Timing, log)
	if err := scheduler.Start(state.Level, state.Food); err != nil {
		log.WithError(err).Error("level setup failed")
		return nil, err
	}

	return &session{
		world:     world,
		state:     state,
		scheduler: scheduler,
		messages:  messages,
	}, nil
}
