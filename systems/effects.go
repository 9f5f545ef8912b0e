package systems

import (
	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
)

// EffectKind names a fire-and-forget presentation effect
type EffectKind string

const (
	EffectMove        EffectKind = "move"
	EffectChop        EffectKind = "chop"
	EffectEat         EffectKind = "eat"
	EffectDrink       EffectKind = "drink"
	EffectEnemyAttack EffectKind = "enemy_attack"
	EffectPlayerHit   EffectKind = "player_hit"
	EffectGameOver    EffectKind = "game_over"
)

// EffectHook plays an effect. Nothing is returned to the core.
type EffectHook interface {
	PlayEffect(kind EffectKind)
}

// EffectSystem turns game events into effect hook calls
type EffectSystem struct {
	hook  EffectHook
	state *components.GameState
}

// NewEffectSystem creates an effect system bound to a hook
func NewEffectSystem(hook EffectHook, state *components.GameState) *EffectSystem {
	return &EffectSystem{hook: hook, state: state}
}

// Initialize sets up event listeners
func (s *EffectSystem) Initialize(world *ecs.World) {
	world.GetEventManager().SubscribeAll(s.handle,
		EventMovement, EventWallDamaged, EventItemPickup, EventEnemyAttack, EventGameOver)
}

func (s *EffectSystem) handle(event ecs.Event) {
	switch e := event.(type) {
	case EntityMoveEvent:
		// only the player's footsteps are heard
		if e.EntityID == s.state.PlayerID {
			s.hook.PlayEffect(EffectMove)
		}
	case WallDamagedEvent:
		s.hook.PlayEffect(EffectChop)
	case ItemPickupEvent:
		if e.Kind == components.PickupSoda {
			s.hook.PlayEffect(EffectDrink)
		} else {
			s.hook.PlayEffect(EffectEat)
		}
	case EnemyAttackEvent:
		s.hook.PlayEffect(EffectEnemyAttack)
		s.hook.PlayEffect(EffectPlayerHit)
	case GameOverEvent:
		s.hook.PlayEffect(EffectGameOver)
	}
}

// LogEffectHook writes effects to a logger; used when there is no audio device
type LogEffectHook struct {
	Log logrus.FieldLogger
}

// PlayEffect implements EffectHook
func (h LogEffectHook) PlayEffect(kind EffectKind) {
	h.Log.WithField("effect", kind).Debug("effect")
}

// EffectHooks fans one effect out to several hooks
type EffectHooks []EffectHook

// PlayEffect implements EffectHook
func (hs EffectHooks) PlayEffect(kind EffectKind) {
	for _, h := range hs {
		h.PlayEffect(kind)
	}
}
