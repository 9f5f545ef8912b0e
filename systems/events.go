package systems

import (
	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
)

// Event type constants
const (
	EventMovement      ecs.EventType = "movement"
	EventBump          ecs.EventType = "bump"
	EventWallDamaged   ecs.EventType = "wall_damaged"
	EventWallDestroyed ecs.EventType = "wall_destroyed"
	EventItemPickup    ecs.EventType = "item_pickup"
	EventEnemyAttack   ecs.EventType = "enemy_attack"
	EventExitReached   ecs.EventType = "exit_reached"
	EventLevelStarted  ecs.EventType = "level_started"
	EventTurnChanged   ecs.EventType = "turn_changed"
	EventGameOver      ecs.EventType = "game_over"
)

// EntityMoveEvent is emitted when any agent moves one cell
type EntityMoveEvent struct {
	EntityID ecs.EntityID // Entity that moved
	FromX    int          // Starting X position
	FromY    int          // Starting Y position
	ToX      int          // Ending X position
	ToY      int          // Ending Y position
}

// Type returns the event type
func (e EntityMoveEvent) Type() ecs.EventType {
	return EventMovement
}

// BumpEvent is emitted when a move is blocked by something the mover cannot act on
type BumpEvent struct {
	EntityID ecs.EntityID
	Obstacle Obstacle
}

// Type returns the event type
func (e BumpEvent) Type() ecs.EventType {
	return EventBump
}

// WallDamagedEvent is emitted on every chop, including the one that breaks the wall
type WallDamagedEvent struct {
	WallID   ecs.EntityID
	Damage   int
	HPLeft   int
	PlayerID ecs.EntityID
}

// Type returns the event type
func (e WallDamagedEvent) Type() ecs.EventType {
	return EventWallDamaged
}

// WallDestroyedEvent is emitted when a wall's hp reaches zero and it leaves the board
type WallDestroyedEvent struct {
	WallID ecs.EntityID
	X, Y   int
}

// Type returns the event type
func (e WallDestroyedEvent) Type() ecs.EventType {
	return EventWallDestroyed
}

// ItemPickupEvent is emitted when the player eats food or drinks soda
type ItemPickupEvent struct {
	EntityID ecs.EntityID // Entity picking up the item
	ItemID   ecs.EntityID // Item being picked up
	Kind     components.PickupKind
	Points   int
	Food     int // food after the pickup
}

// Type returns the event type
func (e ItemPickupEvent) Type() ecs.EventType {
	return EventItemPickup
}

// EnemyAttackEvent is emitted when an enemy bumps into the player
type EnemyAttackEvent struct {
	AttackerID ecs.EntityID // Enemy entity performing the attack
	TargetID   ecs.EntityID // Player entity being attacked
	Damage     int
	Food       int // food left after the hit
}

// Type returns the event type
func (e EnemyAttackEvent) Type() ecs.EventType {
	return EventEnemyAttack
}

// ExitReachedEvent is emitted when the player steps onto the exit
type ExitReachedEvent struct {
	PlayerID ecs.EntityID
	Level    int
	Food     int
}

// Type returns the event type
func (e ExitReachedEvent) Type() ecs.EventType {
	return EventExitReached
}

// LevelStartedEvent is emitted once a level has been generated
type LevelStartedEvent struct {
	Level   int
	Enemies int
}

// Type returns the event type
func (e LevelStartedEvent) Type() ecs.EventType {
	return EventLevelStarted
}

// TurnChangedEvent is emitted on every scheduler state transition
type TurnChangedEvent struct {
	From components.TurnOwner
	To   components.TurnOwner
}

// Type returns the event type
func (e TurnChangedEvent) Type() ecs.EventType {
	return EventTurnChanged
}

// GameOverEvent is emitted once, when the player runs out of food
type GameOverEvent struct {
	PlayerID ecs.EntityID
	Level    int
}

// Type returns the event type
func (e GameOverEvent) Type() ecs.EventType {
	return EventGameOver
}
