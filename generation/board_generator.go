package generation

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
)

var (
	// ErrPoolExhausted is returned when a category asks for more cells than remain free
	ErrPoolExhausted = errors.New("free cell pool exhausted")
	// ErrInvalidLevel is returned for level numbers below 1
	ErrInvalidLevel = errors.New("invalid level")
	// ErrNoTileKinds is returned when a category must place objects but has no kinds to pick from
	ErrNoTileKinds = errors.New("no tile kinds")
)

// TileKinds lists the kinds the generator picks from, per category
type TileKinds struct {
	Floor     []string
	OuterWall []string
	Wall      []string
	Food      []string
	Enemy     []string
	Exit      string
}

// TileKindsFromCatalog collects the kind sets from a tile catalog
func TileKindsFromCatalog(c *data.TileCatalog) TileKinds {
	kinds := TileKinds{
		Floor:     c.Kinds(data.CategoryFloor),
		OuterWall: c.Kinds(data.CategoryOuterWall),
		Wall:      c.Kinds(data.CategoryWall),
		Food:      c.Kinds(data.CategoryFood),
		Enemy:     c.Kinds(data.CategoryEnemy),
	}
	if exits := c.Kinds(data.CategoryExit); len(exits) > 0 {
		kinds.Exit = exits[0]
	}
	return kinds
}

// Placement is one planned spawn
type Placement struct {
	Kind     string
	Cell     Cell
	Category data.Category
}

// Layout is a fully planned level. Nothing in it has been spawned yet.
type Layout struct {
	Level int
	Board *Board
	// Tiles are the floor and outer wall background, one per padded cell
	Tiles []Placement
	// Objects are walls, food and enemies in placement order
	Objects []Placement
	Exit    Placement
	// Pool holds the interior cells left free after placement
	Pool *FreeCellPool
	// Occupied holds every cell given an object, exit included
	Occupied mapset.Set[Cell]
}

// Count returns how many objects of a category were placed
func (l *Layout) Count(category data.Category) int {
	n := 0
	for _, p := range l.Objects {
		if p.Category == category {
			n++
		}
	}
	return n
}

// EnemyCount is floor(log2(level)), never below zero
func EnemyCount(level int) int {
	if level < 1 {
		return 0
	}
	return bits.Len(uint(level)) - 1
}

// BoardGenerator plans and builds levels
type BoardGenerator struct {
	cfg   config.BoardConfig
	kinds TileKinds
	rng   *rand.Rand
}

// NewBoardGenerator creates a generator with a time based seed
func NewBoardGenerator(cfg config.BoardConfig, kinds TileKinds) *BoardGenerator {
	return &BoardGenerator{
		cfg:   cfg,
		kinds: kinds,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *BoardGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Plan lays out a level without spawning anything. It either returns a complete layout
// or an error; there is no partial result.
func (g *BoardGenerator) Plan(level int) (*Layout, error) {
	if level < 1 {
		return nil, fmt.Errorf("level %d: %w", level, ErrInvalidLevel)
	}
	if err := g.cfg.WallCount.Validate(); err != nil {
		return nil, fmt.Errorf("wall count: %w", err)
	}
	if err := g.cfg.FoodCount.Validate(); err != nil {
		return nil, fmt.Errorf("food count: %w", err)
	}
	if len(g.kinds.Floor) == 0 || len(g.kinds.OuterWall) == 0 {
		return nil, fmt.Errorf("board background: %w", ErrNoTileKinds)
	}
	if g.kinds.Exit == "" {
		return nil, fmt.Errorf("exit: %w", ErrNoTileKinds)
	}

	board := NewBoard(g.cfg.Columns, g.cfg.Rows)
	layout := &Layout{
		Level:    level,
		Board:    board,
		Occupied: mapset.New[Cell](),
	}

	g.planBackground(layout)

	layout.Pool = NewFreeCellPool(board)

	wallCount := g.drawCount(g.cfg.WallCount)
	if err := g.planObjects(layout, data.CategoryWall, g.kinds.Wall, wallCount); err != nil {
		return nil, err
	}
	foodCount := g.drawCount(g.cfg.FoodCount)
	if err := g.planObjects(layout, data.CategoryFood, g.kinds.Food, foodCount); err != nil {
		return nil, err
	}
	if err := g.planObjects(layout, data.CategoryEnemy, g.kinds.Enemy, EnemyCount(level)); err != nil {
		return nil, err
	}

	layout.Exit = Placement{Kind: g.kinds.Exit, Cell: board.Exit, Category: data.CategoryExit}
	layout.Occupied.Put(board.Exit)

	return layout, nil
}

// Build plans a level and then spawns every tile, object and the exit through the spawner
func (g *BoardGenerator) Build(level int, spawner Spawner) (*Layout, error) {
	layout, err := g.Plan(level)
	if err != nil {
		return nil, err
	}

	for _, p := range layout.Tiles {
		if _, err := spawner.Spawn(p.Kind, p.Cell); err != nil {
			return nil, fmt.Errorf("spawn %s tile at %s: %w", p.Kind, p.Cell, err)
		}
	}
	for _, p := range layout.Objects {
		if _, err := spawner.Spawn(p.Kind, p.Cell); err != nil {
			return nil, fmt.Errorf("spawn %s at %s: %w", p.Kind, p.Cell, err)
		}
	}
	if _, err := spawner.Spawn(layout.Exit.Kind, layout.Exit.Cell); err != nil {
		return nil, fmt.Errorf("spawn exit: %w", err)
	}

	return layout, nil
}

// planBackground covers the padded board: outer wall kinds on the ring, floor kinds inside
func (g *BoardGenerator) planBackground(layout *Layout) {
	board := layout.Board
	for x := -1; x < board.Columns+1; x++ {
		for y := -1; y < board.Rows+1; y++ {
			cell := Cell{X: x, Y: y}
			p := Placement{Kind: g.pick(g.kinds.Floor), Cell: cell, Category: data.CategoryFloor}
			if board.IsPerimeter(cell) {
				p = Placement{Kind: g.pick(g.kinds.OuterWall), Cell: cell, Category: data.CategoryOuterWall}
			}
			layout.Tiles = append(layout.Tiles, p)
		}
	}
}

func (g *BoardGenerator) planObjects(layout *Layout, category data.Category, kinds []string, count int) error {
	if count == 0 {
		return nil
	}
	if len(kinds) == 0 {
		return fmt.Errorf("%s: %w", category, ErrNoTileKinds)
	}
	if count > layout.Pool.Len() {
		return fmt.Errorf("%s: need %d cells, %d free: %w", category, count, layout.Pool.Len(), ErrPoolExhausted)
	}

	for i := 0; i < count; i++ {
		cell, _ := layout.Pool.Take(g.rng)
		layout.Occupied.Put(cell)
		layout.Objects = append(layout.Objects, Placement{Kind: g.pick(kinds), Cell: cell, Category: category})
	}
	return nil
}

// drawCount picks uniformly in [Min, Max]
func (g *BoardGenerator) drawCount(r config.Range) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

func (g *BoardGenerator) pick(kinds []string) string {
	return kinds[g.rng.Intn(len(kinds))]
}
