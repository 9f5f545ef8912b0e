package systems

import (
	"github.com/zyedidia/generic/mapset"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

var cardinals = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// AutoplayInput is a greedy bot that walks toward the exit. It steers around enemies and
// the outer ring but happily chops through walls. Cells it has already stood on cost extra
// so it does not pace back and forth forever.
type AutoplayInput struct {
	world *ecs.World
	state *components.GameState

	level   int
	visited map[generation.Cell]int
}

// NewAutoplayInput creates a bot reading the given world
func NewAutoplayInput(world *ecs.World, state *components.GameState) *AutoplayInput {
	return &AutoplayInput{world: world, state: state, visited: make(map[generation.Cell]int)}
}

// PollMoveIntent always returns a move while a player and an exit exist
func (a *AutoplayInput) PollMoveIntent() (int, int, bool) {
	if a.level != a.state.Level {
		a.level = a.state.Level
		clear(a.visited)
	}

	pos, ok := ecs.Get[*components.PositionComponent](a.world, a.state.PlayerID, components.Position)
	if !ok {
		return 0, 0, false
	}
	exits := a.world.GetEntitiesWithTag(components.TagExit)
	if len(exits) == 0 {
		return 0, 0, false
	}
	exit, ok := ecs.Get[*components.PositionComponent](a.world, exits[0].ID, components.Position)
	if !ok {
		return 0, 0, false
	}

	here := generation.Cell{X: pos.X, Y: pos.Y}
	goal := generation.Cell{X: exit.X, Y: exit.Y}
	a.visited[here]++

	avoid := a.hazards()
	best, bestScore := -1, 0
	for i, d := range cardinals {
		next := here.Add(d[0], d[1])
		if avoid.Has(next) {
			continue
		}
		score := manhattan(next, goal) + 2*a.visited[next]
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		// boxed in: the bump still passes the turn so the enemies come to us
		return cardinals[0][0], cardinals[0][1], true
	}
	return cardinals[best][0], cardinals[best][1], true
}

// hazards collects the cells the bot will not step toward
func (a *AutoplayInput) hazards() mapset.Set[generation.Cell] {
	cells := mapset.New[generation.Cell]()
	for _, tag := range []string{components.TagEnemy, components.TagOuterWall} {
		for _, e := range a.world.GetEntitiesWithTag(tag) {
			if pos, ok := ecs.Get[*components.PositionComponent](a.world, e.ID, components.Position); ok {
				cells.Put(generation.Cell{X: pos.X, Y: pos.Y})
			}
		}
	}
	return cells
}

func manhattan(a, b generation.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
