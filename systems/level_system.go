package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
	"ebiten-scavenger/spawners"
)

// PlayerStart is where the player enters every level
var PlayerStart = generation.Cell{X: 0, Y: 0}

// LevelSystem tears down the previous level and builds the next one. It implements LevelTransition.
type LevelSystem struct {
	world     *ecs.World
	state     *components.GameState
	generator *generation.BoardGenerator
	spawner   *spawners.EntitySpawner
	log       logrus.FieldLogger

	layout *generation.Layout
}

// NewLevelSystem creates a level system
func NewLevelSystem(
	world *ecs.World,
	state *components.GameState,
	generator *generation.BoardGenerator,
	spawner *spawners.EntitySpawner,
	log logrus.FieldLogger,
) *LevelSystem {
	return &LevelSystem{
		world:     world,
		state:     state,
		generator: generator,
		spawner:   spawner,
		log:       log,
	}
}

// LoadLevel replaces the world's contents with a new level. On failure the world is left empty.
func (ls *LevelSystem) LoadLevel(level, carriedFood int) error {
	ls.world.Reset()
	ls.state.Enemies.Clear()
	ls.state.Level = level
	ls.state.Food = carriedFood
	ls.state.Turn = components.TurnSetup
	ls.state.PlayerID = ecs.NoEntity
	ls.layout = nil

	playerID, err := ls.spawner.CreatePlayer(PlayerStart, carriedFood)
	if err != nil {
		ls.abort()
		return fmt.Errorf("level %d: %w", level, err)
	}
	ls.state.PlayerID = playerID
	ls.spawner.SetTarget(playerID)

	layout, err := ls.generator.Build(level, ls.spawner)
	if err != nil {
		ls.abort()
		return fmt.Errorf("level %d: %w", level, err)
	}
	ls.layout = layout

	ls.world.EmitEvent(LevelStartedEvent{Level: level, Enemies: ls.state.Enemies.Len()})
	ls.log.WithFields(logrus.Fields{
		"level":   level,
		"food":    carriedFood,
		"walls":   layout.Count(data.CategoryWall),
		"pickups": layout.Count(data.CategoryFood),
		"enemies": ls.state.Enemies.Len(),
	}).Info("level started")
	return nil
}

// Layout returns the plan of the current level, or nil before the first successful load
func (ls *LevelSystem) Layout() *generation.Layout {
	return ls.layout
}

func (ls *LevelSystem) abort() {
	ls.world.Reset()
	ls.state.Enemies.Clear()
	ls.state.PlayerID = ecs.NoEntity
}
