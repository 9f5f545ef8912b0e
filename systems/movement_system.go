package systems

import (
	"errors"
	"fmt"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

// ErrInvalidDirection is returned for anything but a one-cell cardinal step
var ErrInvalidDirection = errors.New("invalid direction")

var (
	// ErrNoPosition is returned when the mover has no position on the board
	ErrNoPosition = errors.New("entity has no position")
	// ErrNoAgent is returned when a controller is asked to drive an entity it cannot find
	ErrNoAgent = errors.New("no such agent")
	// ErrAgentInactive is returned for agents that have died or left the level
	ErrAgentInactive = errors.New("agent is inactive")
)

// ObstacleKind classifies whatever stopped a move
type ObstacleKind int

const (
	ObstacleNone ObstacleKind = iota
	ObstacleWall
	ObstacleEnemy
	ObstaclePlayer
	ObstacleOther
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleNone:
		return "none"
	case ObstacleWall:
		return "wall"
	case ObstacleEnemy:
		return "enemy"
	case ObstaclePlayer:
		return "player"
	}
	return "other"
}

// Obstacle is the blocking occupant hit by a probe
type Obstacle struct {
	Kind     ObstacleKind
	EntityID ecs.EntityID
}

// MoveResult is the outcome of one attempted step
type MoveResult struct {
	Moved    bool
	From     generation.Cell
	To       generation.Cell
	Obstacle Obstacle
}

// ValidateDirection accepts exactly one of dx, dy as +-1 and the other as 0
func ValidateDirection(dx, dy int) error {
	if (dx == 0) == (dy == 0) || dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return fmt.Errorf("(%d,%d): %w", dx, dy, ErrInvalidDirection)
	}
	return nil
}

// MovementSystem resolves single-cell moves against the blocking layer. It never reacts to
// what it hits; that is up to the controller that asked for the move.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// AttemptMove probes from the entity's cell to the neighbouring cell in (dx, dy) and moves
// the entity there when nothing on the blocking layer is in the way.
func (s *MovementSystem) AttemptMove(world *ecs.World, entityID ecs.EntityID, dx, dy int) (MoveResult, error) {
	if err := ValidateDirection(dx, dy); err != nil {
		return MoveResult{}, err
	}

	position, ok := ecs.Get[*components.PositionComponent](world, entityID, components.Position)
	if !ok {
		return MoveResult{}, fmt.Errorf("entity %d: %w", entityID, ErrNoPosition)
	}

	from := generation.Cell{X: position.X, Y: position.Y}
	to := from.Add(dx, dy)
	result := MoveResult{From: from, To: to}

	if obstacle := s.probe(world, entityID, from, to); obstacle.Kind != ObstacleNone {
		result.Obstacle = obstacle
		return result, nil
	}

	position.X, position.Y = to.X, to.Y
	result.Moved = true

	world.EmitEvent(EntityMoveEvent{
		EntityID: entityID,
		FromX:    from.X,
		FromY:    from.Y,
		ToX:      to.X,
		ToY:      to.Y,
	})
	return result, nil
}

// probe walks the straight line from one cell (exclusive) to another (inclusive) and returns
// the first blocking occupant, ignoring the mover itself
func (s *MovementSystem) probe(world *ecs.World, mover ecs.EntityID, from, to generation.Cell) Obstacle {
	stepX, stepY := sign(to.X-from.X), sign(to.Y-from.Y)
	for cell := from; cell != to; {
		cell = cell.Add(stepX, stepY)
		if id := BlockerAt(world, cell, mover); id != ecs.NoEntity {
			return Obstacle{Kind: classify(world, id), EntityID: id}
		}
	}
	return Obstacle{Kind: ObstacleNone}
}

// BlockerAt returns the oldest blocking entity on a cell other than ignore, or NoEntity
func BlockerAt(world *ecs.World, cell generation.Cell, ignore ecs.EntityID) ecs.EntityID {
	for _, entity := range world.GetEntitiesWithComponent(components.Collision) {
		if entity.ID == ignore {
			continue
		}
		collision, _ := ecs.Get[*components.CollisionComponent](world, entity.ID, components.Collision)
		if collision == nil || !collision.Blocks {
			continue
		}
		position, ok := ecs.Get[*components.PositionComponent](world, entity.ID, components.Position)
		if ok && position.At(cell.X, cell.Y) {
			return entity.ID
		}
	}
	return ecs.NoEntity
}

// EntitiesAt returns every entity on a cell carrying the given component
func EntitiesAt(world *ecs.World, cell generation.Cell, componentID ecs.ComponentID) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0)
	for _, entity := range world.GetEntitiesWithComponent(componentID) {
		position, ok := ecs.Get[*components.PositionComponent](world, entity.ID, components.Position)
		if ok && position.At(cell.X, cell.Y) {
			ids = append(ids, entity.ID)
		}
	}
	return ids
}

func classify(world *ecs.World, id ecs.EntityID) ObstacleKind {
	switch {
	case world.HasComponent(id, components.Wall):
		return ObstacleWall
	case world.HasComponent(id, components.Enemy):
		return ObstacleEnemy
	case world.HasComponent(id, components.Player):
		return ObstaclePlayer
	}
	return ObstacleOther
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
