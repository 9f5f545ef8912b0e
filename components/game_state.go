package components

import (
	"errors"
	"fmt"

	"ebiten-scavenger/ecs"
)

// ErrRegistrySealed is returned when an enemy registers outside level setup
var ErrRegistrySealed = errors.New("enemy registry is sealed")

// TurnOwner says who may act right now
type TurnOwner int

const (
	TurnSetup TurnOwner = iota
	TurnPlayer
	TurnEnemies
	TurnGameOver
)

func (t TurnOwner) String() string {
	switch t {
	case TurnSetup:
		return "setup"
	case TurnPlayer:
		return "player"
	case TurnEnemies:
		return "enemies"
	case TurnGameOver:
		return "game_over"
	}
	return fmt.Sprintf("turn(%d)", int(t))
}

// EnemyRegistry is the ordered roster of enemies for the current level.
// It is cleared and refilled during setup, then sealed for the rest of the level.
type EnemyRegistry struct {
	enemies []ecs.EntityID
	sealed  bool
}

// NewEnemyRegistry creates an empty, open registry
func NewEnemyRegistry() *EnemyRegistry {
	return &EnemyRegistry{}
}

// Clear empties and reopens the registry for a new level
func (r *EnemyRegistry) Clear() {
	r.enemies = r.enemies[:0]
	r.sealed = false
}

// Register appends an enemy in spawn order
func (r *EnemyRegistry) Register(id ecs.EntityID) error {
	if r.sealed {
		return fmt.Errorf("register enemy %d: %w", id, ErrRegistrySealed)
	}
	r.enemies = append(r.enemies, id)
	return nil
}

// Seal freezes the registry until the next Clear
func (r *EnemyRegistry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry is read-only
func (r *EnemyRegistry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered enemies
func (r *EnemyRegistry) Len() int {
	return len(r.enemies)
}

// Snapshot returns a copy of the roster in registration order
func (r *EnemyRegistry) Snapshot() []ecs.EntityID {
	snapshot := make([]ecs.EntityID, len(r.enemies))
	copy(snapshot, r.enemies)
	return snapshot
}

// GameState is the single context object for a run. It replaces any global game manager:
// it is built once and handed to the scheduler, controllers and level system.
type GameState struct {
	Level   int
	Turn    TurnOwner
	Food    int // food carried into the next level
	Enemies *EnemyRegistry
	// PlayerID is the current level's player entity
	PlayerID ecs.EntityID
}

// NewGameState starts a run on level 1 with the given food
func NewGameState(startingFood int) *GameState {
	return &GameState{
		Level:   1,
		Turn:    TurnSetup,
		Food:    startingFood,
		Enemies: NewEnemyRegistry(),
	}
}

// IsOver reports whether the run has ended
func (s *GameState) IsOver() bool {
	return s.Turn == TurnGameOver
}
