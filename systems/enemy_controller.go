package systems

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

// directionEpsilon is how close two x coordinates must be to count as the same column
const directionEpsilon = 1e-6

// EnemyOutcome describes one enemy activation
type EnemyOutcome struct {
	// Skipped is set on the activations where the enemy rests
	Skipped  bool
	Result   MoveResult
	Attacked bool
	Starved  bool
	// MoveDuration is how long the scheduler should pause after this enemy
	MoveDuration float64
}

// DecideDirection steps toward target along x while the columns differ, otherwise along y.
// It never returns a diagonal.
func DecideDirection(self, target generation.Cell) (dx, dy int) {
	if math.Abs(float64(target.X-self.X)) < directionEpsilon {
		if target.Y > self.Y {
			return 0, 1
		}
		return 0, -1
	}
	if target.X > self.X {
		return 1, 0
	}
	return -1, 0
}

// EnemyController drives enemies toward their target and attacks the player on contact
type EnemyController struct {
	world    *ecs.World
	state    *components.GameState
	movement *MovementSystem
	log      logrus.FieldLogger
}

// NewEnemyController creates an enemy controller
func NewEnemyController(world *ecs.World, state *components.GameState, movement *MovementSystem, log logrus.FieldLogger) *EnemyController {
	return &EnemyController{world: world, state: state, movement: movement, log: log}
}

// Act runs one scheduler activation for an enemy. Enemies move on every other activation,
// starting with the first.
func (c *EnemyController) Act(enemyID ecs.EntityID) (EnemyOutcome, error) {
	var outcome EnemyOutcome

	enemy, ok := ecs.Get[*components.EnemyComponent](c.world, enemyID, components.Enemy)
	if !ok {
		return outcome, fmt.Errorf("enemy %d: %w", enemyID, ErrNoAgent)
	}
	motion, ok := ecs.Get[*components.MotionComponent](c.world, enemyID, components.Motion)
	if ok {
		outcome.MoveDuration = motion.MoveDuration
		if !motion.Alive {
			return outcome, fmt.Errorf("enemy %d: %w", enemyID, ErrAgentInactive)
		}
	}
	position, ok := ecs.Get[*components.PositionComponent](c.world, enemyID, components.Position)
	if !ok {
		return outcome, fmt.Errorf("enemy %d: %w", enemyID, ErrNoPosition)
	}

	target := c.locateTarget(enemy)

	if enemy.SkipMove {
		enemy.SkipMove = false
		outcome.Skipped = true
		return outcome, nil
	}

	dx, dy := DecideDirection(generation.Cell{X: position.X, Y: position.Y}, target)
	result, err := c.movement.AttemptMove(c.world, enemyID, dx, dy)
	if err != nil {
		return outcome, err
	}
	enemy.SkipMove = true
	outcome.Result = result

	if !result.Moved {
		outcome.Attacked, outcome.Starved = c.onBlocked(enemyID, enemy, result.Obstacle)
	}

	c.log.WithFields(logrus.Fields{
		"entity": enemyID, "x": result.To.X, "y": result.To.Y,
		"moved": result.Moved, "obstacle": result.Obstacle.Kind,
	}).Debug("enemy move")
	return outcome, nil
}

// locateTarget refreshes the enemy's last known target cell and returns it
func (c *EnemyController) locateTarget(enemy *components.EnemyComponent) generation.Cell {
	if pos, ok := ecs.Get[*components.PositionComponent](c.world, enemy.Target, components.Position); ok {
		enemy.LastKnownX, enemy.LastKnownY = pos.X, pos.Y
	}
	return generation.Cell{X: enemy.LastKnownX, Y: enemy.LastKnownY}
}

// onBlocked attacks the player. Anything else is a silent bump.
func (c *EnemyController) onBlocked(enemyID ecs.EntityID, enemy *components.EnemyComponent, obstacle Obstacle) (attacked, starvedPlayer bool) {
	if obstacle.Kind != ObstaclePlayer {
		c.world.EmitEvent(BumpEvent{EntityID: enemyID, Obstacle: obstacle})
		return false, false
	}

	player, ok := ecs.Get[*components.PlayerComponent](c.world, obstacle.EntityID, components.Player)
	if !ok {
		return false, false
	}
	setFood(c.state, player, player.Food-enemy.AttackDamage)

	c.world.EmitEvent(EnemyAttackEvent{
		AttackerID: enemyID,
		TargetID:   obstacle.EntityID,
		Damage:     enemy.AttackDamage,
		Food:       player.Food,
	})
	return true, starved(player)
}
