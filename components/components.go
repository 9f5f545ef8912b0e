package components

import "ebiten-scavenger/ecs"

// PositionComponent stores entity position on the board grid
type PositionComponent struct {
	X, Y int
}

// At reports whether the entity sits on the given cell
func (p *PositionComponent) At(x, y int) bool {
	return p.X == x && p.Y == y
}

// TileComponent records which catalog kind an entity was spawned from
type TileComponent struct {
	Kind string
}

// CollisionComponent puts an entity on the blocking layer when Blocks is set
type CollisionComponent struct {
	Blocks bool
}

// MotionComponent is shared by every agent (player and enemies)
type MotionComponent struct {
	MoveDuration float64 // seconds the scheduler waits after this agent acts
	Alive        bool
}

// PlayerComponent holds the player's food and pickup/chop tuning
type PlayerComponent struct {
	Food          int
	WallDamage    int
	PointsPerFood int
	PointsPerSoda int
}

// EnemyComponent holds per-enemy attack state
type EnemyComponent struct {
	AttackDamage int
	// SkipMove alternates on every activation; the enemy only moves when it was false on entry
	SkipMove bool
	// Target is the entity the enemy walks toward
	Target ecs.EntityID
	// LastKnownX/Y is where the target stood when the enemy last looked
	LastKnownX, LastKnownY int
}

// WallComponent is an inner, choppable wall
type WallComponent struct {
	HP int
}

// Damaged reports whether the wall has taken a hit since it was built with maxHP
func (w *WallComponent) Damaged(maxHP int) bool {
	return w.HP < maxHP
}

// PickupKind distinguishes food from soda
type PickupKind string

const (
	PickupFood PickupKind = "food"
	PickupSoda PickupKind = "soda"
)

// PickupComponent marks a consumable lying on the floor
type PickupComponent struct {
	Kind PickupKind
}

// ExitComponent marks the level exit
type ExitComponent struct{}
