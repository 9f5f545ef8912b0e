package generation

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
)

type recordingSpawner struct {
	spawned []Placement
	failOn  string
}

func (s *recordingSpawner) Spawn(kind string, cell Cell) (ecs.EntityID, error) {
	if kind == s.failOn {
		return ecs.NoEntity, errors.New("boom")
	}
	s.spawned = append(s.spawned, Placement{Kind: kind, Cell: cell})
	return ecs.EntityID(len(s.spawned)), nil
}

func newTestGenerator(cfg config.BoardConfig, seed int64) *BoardGenerator {
	g := NewBoardGenerator(cfg, TileKindsFromCatalog(data.DefaultTileCatalog()))
	g.SetSeed(seed)
	return g
}

func TestEnemyCount(t *testing.T) {
	tests := map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 7: 2, 8: 3, 16: 4, 31: 4}
	for level, want := range tests {
		assert.Equal(t, want, EnemyCount(level), "level %d", level)
	}
}

func TestPlanInvariantsAcrossSeeds(t *testing.T) {
	cfg := config.Default().Board

	for seed := int64(0); seed < 50; seed++ {
		level := int(seed%9) + 1
		layout, err := newTestGenerator(cfg, seed).Plan(level)
		require.NoError(t, err)
		board := layout.Board

		walls := layout.Count(data.CategoryWall)
		food := layout.Count(data.CategoryFood)
		enemies := layout.Count(data.CategoryEnemy)

		assert.GreaterOrEqual(t, walls, cfg.WallCount.Min)
		assert.LessOrEqual(t, walls, cfg.WallCount.Max)
		assert.GreaterOrEqual(t, food, cfg.FoodCount.Min)
		assert.LessOrEqual(t, food, cfg.FoodCount.Max)
		assert.Equal(t, EnemyCount(level), enemies)
		assert.Equal(t, board.InteriorCells()-walls-food-enemies, layout.Pool.Len())

		seen := map[Cell]bool{}
		for _, p := range layout.Objects {
			assert.False(t, seen[p.Cell], "cell %s placed twice", p.Cell)
			seen[p.Cell] = true
			assert.False(t, layout.Pool.Contains(p.Cell))
			assert.True(t, p.Cell.X >= 1 && p.Cell.X <= board.Columns-2, "x border reserved: %s", p.Cell)
			assert.True(t, p.Cell.Y >= 1 && p.Cell.Y <= board.Rows-2, "y border reserved: %s", p.Cell)
		}

		assert.Len(t, layout.Tiles, (board.Columns+2)*(board.Rows+2))
		for _, tile := range layout.Tiles {
			if board.IsPerimeter(tile.Cell) {
				assert.Equal(t, data.CategoryOuterWall, tile.Category, "seed %d cell %s", seed, tile.Cell)
			} else {
				assert.Equal(t, data.CategoryFloor, tile.Category)
			}
		}

		assert.Equal(t, Cell{X: board.Columns - 1, Y: board.Rows - 1}, layout.Exit.Cell)
		assert.False(t, seen[layout.Exit.Cell])
		assert.True(t, layout.Occupied.Has(layout.Exit.Cell))
		assert.Equal(t, len(layout.Objects)+1, layout.Occupied.Size())
	}
}

func TestPlanIsReproducibleForASeed(t *testing.T) {
	cfg := config.Default().Board
	a, err := newTestGenerator(cfg, 42).Plan(6)
	require.NoError(t, err)
	b, err := newTestGenerator(cfg, 42).Plan(6)
	require.NoError(t, err)
	assert.Equal(t, a.Objects, b.Objects)
	assert.Equal(t, a.Tiles, b.Tiles)
}

func TestPlanPoolExhausted(t *testing.T) {
	cfg := config.BoardConfig{
		Columns:   4,
		Rows:      4,
		WallCount: config.Range{Min: 3, Max: 3},
		FoodCount: config.Range{Min: 2, Max: 2},
	}
	spawner := &recordingSpawner{}

	_, err := newTestGenerator(cfg, 1).Build(1, spawner)
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.ErrorContains(t, err, "food")
	assert.Empty(t, spawner.spawned, "nothing may be spawned when planning fails")
}

func TestPlanEnemiesExhaustPool(t *testing.T) {
	cfg := config.BoardConfig{Columns: 4, Rows: 4}
	layout, err := newTestGenerator(cfg, 1).Plan(16)
	require.NoError(t, err)
	assert.Equal(t, 4, layout.Count(data.CategoryEnemy))
	assert.Equal(t, 0, layout.Pool.Len())

	_, err = newTestGenerator(cfg, 1).Plan(32)
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestPlanRejectsBadInput(t *testing.T) {
	cfg := config.Default().Board

	_, err := newTestGenerator(cfg, 1).Plan(0)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	cfg.WallCount = config.Range{Min: 4, Max: 2}
	_, err = newTestGenerator(cfg, 1).Plan(1)
	assert.ErrorIs(t, err, config.ErrInvalidRange)

	g := NewBoardGenerator(config.Default().Board, TileKinds{Floor: []string{"f"}, OuterWall: []string{"o"}, Exit: "x"})
	_, err = g.Plan(1)
	assert.ErrorIs(t, err, ErrNoTileKinds)
}

func TestBuildSpawnsEverything(t *testing.T) {
	cfg := config.Default().Board
	spawner := &recordingSpawner{}

	layout, err := newTestGenerator(cfg, 9).Build(4, spawner)
	require.NoError(t, err)
	assert.Len(t, spawner.spawned, len(layout.Tiles)+len(layout.Objects)+1)

	last := spawner.spawned[len(spawner.spawned)-1]
	assert.Equal(t, "exit", last.Kind)
	assert.Equal(t, layout.Board.Exit, last.Cell)
}

func TestBuildSurfacesSpawnErrors(t *testing.T) {
	_, err := newTestGenerator(config.Default().Board, 3).Build(1, &recordingSpawner{failOn: "exit"})
	assert.ErrorContains(t, err, "spawn exit")
}

func TestFreeCellPool(t *testing.T) {
	board := NewBoard(6, 5)
	pool := NewFreeCellPool(board)
	require.Equal(t, 12, pool.Len())
	assert.False(t, pool.add(Cell{X: 1, Y: 1}), "duplicates are rejected")

	rng := rand.New(rand.NewSource(5))
	taken := map[Cell]bool{}
	for pool.Len() > 0 {
		c, ok := pool.Take(rng)
		require.True(t, ok)
		assert.False(t, taken[c])
		assert.False(t, pool.Contains(c))
		taken[c] = true
	}
	assert.Len(t, taken, 12)

	_, ok := pool.Take(rng)
	assert.False(t, ok)
}

func TestBoardGeometry(t *testing.T) {
	b := NewBoard(8, 8)
	assert.True(t, b.InBounds(Cell{0, 0}))
	assert.False(t, b.InBounds(Cell{8, 0}))
	assert.True(t, b.IsPerimeter(Cell{-1, 3}))
	assert.True(t, b.IsPerimeter(Cell{8, 8}))
	assert.False(t, b.IsPerimeter(Cell{3, 3}))
	assert.False(t, b.IsPerimeter(Cell{9, 3}))
	assert.Equal(t, 36, b.InteriorCells())
	assert.Equal(t, Cell{7, 7}, b.Exit)
}
