package systems

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
	"ebiten-scavenger/spawners"
)

// fixture is a hand built level with real controllers on top
type fixture struct {
	t        *testing.T
	cfg      config.GameConfig
	world    *ecs.World
	state    *components.GameState
	spawner  *spawners.EntitySpawner
	movement *MovementSystem
	player   *PlayerController
	enemies  *EnemyController
	log      logrus.FieldLogger
	hook     *logtest.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := config.Default()
	cfg.Timing = config.TimingConfig{
		MoveDuration:      0.125,
		TurnDelay:         0.25,
		LevelStartDelay:   0.5,
		RestartLevelDelay: 0.5,
	}

	world := ecs.NewWorld()
	state := components.NewGameState(cfg.Player.StartingFood)
	movement := NewMovementSystem()
	return &fixture{
		t:        t,
		cfg:      cfg,
		world:    world,
		state:    state,
		spawner:  spawners.NewEntitySpawner(world, data.DefaultTileCatalog(), state.Enemies, cfg, logger),
		movement: movement,
		player:   NewPlayerController(world, state, movement, logger),
		enemies:  NewEnemyController(world, state, movement, logger),
		log:      logger,
		hook:     hook,
	}
}

// placePlayer creates the player and makes it the enemies' target
func (f *fixture) placePlayer(x, y, food int) ecs.EntityID {
	f.t.Helper()
	id, err := f.spawner.CreatePlayer(generation.Cell{X: x, Y: y}, food)
	require.NoError(f.t, err)
	f.state.PlayerID = id
	f.state.Food = food
	f.spawner.SetTarget(id)
	return id
}

func (f *fixture) spawn(kind string, x, y int) ecs.EntityID {
	f.t.Helper()
	id, err := f.spawner.Spawn(kind, generation.Cell{X: x, Y: y})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) position(id ecs.EntityID) generation.Cell {
	f.t.Helper()
	pos, ok := ecs.Get[*components.PositionComponent](f.world, id, components.Position)
	require.True(f.t, ok, "entity %d has no position", id)
	return generation.Cell{X: pos.X, Y: pos.Y}
}

func (f *fixture) food() int {
	f.t.Helper()
	player, ok := playerOf(f.world, f.state)
	require.True(f.t, ok)
	return player.Food
}

// record collects every event of the given types in emission order
func (f *fixture) record(types ...ecs.EventType) *[]ecs.Event {
	events := &[]ecs.Event{}
	f.world.GetEventManager().SubscribeAll(func(e ecs.Event) {
		*events = append(*events, e)
	}, types...)
	return events
}

// scriptedInput replays fixed move intents, one per poll
type scriptedInput struct {
	moves [][2]int
	polls int
}

func (in *scriptedInput) push(dx, dy int) {
	in.moves = append(in.moves, [2]int{dx, dy})
}

func (in *scriptedInput) PollMoveIntent() (int, int, bool) {
	in.polls++
	if len(in.moves) == 0 {
		return 0, 0, false
	}
	m := in.moves[0]
	in.moves = in.moves[1:]
	return m[0], m[1], true
}

// scriptedLevels rebuilds the fixture's world with a fixed layout per level
type scriptedLevels struct {
	f     *fixture
	build func(f *fixture, level int)
	loads [][2]int // level, carried food
	err   error
}

func (l *scriptedLevels) LoadLevel(level, carriedFood int) error {
	l.loads = append(l.loads, [2]int{level, carriedFood})
	if l.err != nil {
		return l.err
	}
	l.f.world.Reset()
	l.f.state.Enemies.Clear()
	l.f.state.Level = level
	l.f.placePlayer(0, 0, carriedFood)
	if l.build != nil {
		l.build(l.f, level)
	}
	return nil
}

// ring surrounds a columns x rows board with outer walls
func (f *fixture) ring(columns, rows int) {
	board := generation.NewBoard(columns, rows)
	for x := -1; x <= columns; x++ {
		for y := -1; y <= rows; y++ {
			if board.IsPerimeter(generation.Cell{X: x, Y: y}) {
				f.spawn("outer1", x, y)
			}
		}
	}
}
