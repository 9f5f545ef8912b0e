package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

// PlayerOutcome describes what one player move attempt did
type PlayerOutcome struct {
	Result MoveResult
	// Reacted is set when the move was blocked by a wall and the player chopped it
	Reacted bool
	// Bumped is set when the move was blocked by something the player cannot act on
	Bumped bool
	// Picked lists the pickups eaten on arrival
	Picked      []components.PickupKind
	ReachedExit bool
	Starved     bool
}

// ConsumesTurn reports whether the attempt counts as the player's turn.
// A silent bump fires no reaction but still hands the turn over.
func (o PlayerOutcome) ConsumesTurn() bool {
	return o.Result.Moved || o.Reacted || o.Bumped
}

// PlayerController moves the player and handles what the player bumps into
type PlayerController struct {
	world    *ecs.World
	state    *components.GameState
	movement *MovementSystem
	log      logrus.FieldLogger
}

// NewPlayerController creates a player controller
func NewPlayerController(world *ecs.World, state *components.GameState, movement *MovementSystem, log logrus.FieldLogger) *PlayerController {
	return &PlayerController{world: world, state: state, movement: movement, log: log}
}

// AttemptMove spends one food, tries to step in (dx, dy), chops a wall in the way, and then
// checks for starvation. Pickups and the exit only trigger if the player is still alive.
func (c *PlayerController) AttemptMove(dx, dy int) (PlayerOutcome, error) {
	var outcome PlayerOutcome

	if err := ValidateDirection(dx, dy); err != nil {
		return outcome, err
	}
	playerID := c.state.PlayerID
	player, ok := playerOf(c.world, c.state)
	if !ok {
		return outcome, fmt.Errorf("player %d: %w", playerID, ErrNoAgent)
	}
	if motion, ok := ecs.Get[*components.MotionComponent](c.world, playerID, components.Motion); ok && !motion.Alive {
		return outcome, fmt.Errorf("player %d: %w", playerID, ErrAgentInactive)
	}

	if _, ok := ecs.Get[*components.PositionComponent](c.world, playerID, components.Position); !ok {
		return outcome, fmt.Errorf("player %d: %w", playerID, ErrNoPosition)
	}

	setFood(c.state, player, player.Food-1)

	result, err := c.movement.AttemptMove(c.world, playerID, dx, dy)
	if err != nil {
		return outcome, err
	}
	outcome.Result = result

	if !result.Moved {
		outcome.Reacted = c.onBlocked(playerID, player, result.Obstacle)
		outcome.Bumped = !outcome.Reacted
	}

	if starved(player) {
		outcome.Starved = true
		return outcome, nil
	}

	if result.Moved {
		c.arrive(playerID, player, result.To, &outcome)
	}

	c.log.WithFields(logrus.Fields{
		"entity": playerID, "x": result.To.X, "y": result.To.Y,
		"moved": result.Moved, "obstacle": result.Obstacle.Kind, "food": player.Food,
	}).Debug("player move")
	return outcome, nil
}

// onBlocked chops walls. Anything else is a silent bump.
func (c *PlayerController) onBlocked(playerID ecs.EntityID, player *components.PlayerComponent, obstacle Obstacle) bool {
	if obstacle.Kind != ObstacleWall {
		c.world.EmitEvent(BumpEvent{EntityID: playerID, Obstacle: obstacle})
		return false
	}

	wall, ok := ecs.Get[*components.WallComponent](c.world, obstacle.EntityID, components.Wall)
	if !ok {
		return false
	}
	wall.HP -= player.WallDamage
	c.world.EmitEvent(WallDamagedEvent{
		WallID:   obstacle.EntityID,
		Damage:   player.WallDamage,
		HPLeft:   wall.HP,
		PlayerID: playerID,
	})

	if wall.HP <= 0 {
		var x, y int
		if pos, ok := ecs.Get[*components.PositionComponent](c.world, obstacle.EntityID, components.Position); ok {
			x, y = pos.X, pos.Y
		}
		c.world.RemoveEntity(obstacle.EntityID)
		c.world.EmitEvent(WallDestroyedEvent{WallID: obstacle.EntityID, X: x, Y: y})
	}
	return true
}

// arrive fires the triggers of the cell the player just entered
func (c *PlayerController) arrive(playerID ecs.EntityID, player *components.PlayerComponent, cell generation.Cell, outcome *PlayerOutcome) {
	for _, itemID := range EntitiesAt(c.world, cell, components.Pickup) {
		pickup, _ := ecs.Get[*components.PickupComponent](c.world, itemID, components.Pickup)
		points := player.PointsPerFood
		if pickup.Kind == components.PickupSoda {
			points = player.PointsPerSoda
		}
		setFood(c.state, player, player.Food+points)
		c.world.RemoveEntity(itemID)
		outcome.Picked = append(outcome.Picked, pickup.Kind)

		c.world.EmitEvent(ItemPickupEvent{
			EntityID: playerID,
			ItemID:   itemID,
			Kind:     pickup.Kind,
			Points:   points,
			Food:     player.Food,
		})
	}

	if len(EntitiesAt(c.world, cell, components.Exit)) > 0 {
		if motion, ok := ecs.Get[*components.MotionComponent](c.world, playerID, components.Motion); ok {
			motion.Alive = false
		}
		outcome.ReachedExit = true
		c.world.EmitEvent(ExitReachedEvent{PlayerID: playerID, Level: c.state.Level, Food: player.Food})
	}
}
