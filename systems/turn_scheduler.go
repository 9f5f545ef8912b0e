package systems

import (
	"errors"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/ecs"
)

// TurnScheduler sequences setup, the player's turn and the enemy phase. It is advanced by
// Update with the frame delta in seconds and never blocks: waiting for input or for a timer
// just means returning early.
type TurnScheduler struct {
	world   *ecs.World
	state   *components.GameState
	player  *PlayerController
	enemies *EnemyController
	input   InputSource
	levels  LevelTransition
	timing  config.TimingConfig
	log     logrus.FieldLogger

	// timer counts down the current wait
	timer float64
	// levelReady is set once the current level has been generated
	levelReady bool
	// nextLevel is non-zero while waiting to load the level after the exit
	nextLevel int
	// queue is the enemy phase's snapshot of the registry, cursor its next entry
	queue  []ecs.EntityID
	cursor int
}

// NewTurnScheduler creates a scheduler in the setup state
func NewTurnScheduler(
	world *ecs.World,
	state *components.GameState,
	player *PlayerController,
	enemies *EnemyController,
	input InputSource,
	levels LevelTransition,
	timing config.TimingConfig,
	log logrus.FieldLogger,
) *TurnScheduler {
	state.Turn = components.TurnSetup
	return &TurnScheduler{
		world:   world,
		state:   state,
		player:  player,
		enemies: enemies,
		input:   input,
		levels:  levels,
		timing:  timing,
		log:     log,
	}
}

// Start loads the first level and begins its intro
func (s *TurnScheduler) Start(level, food int) error {
	if err := s.levels.LoadLevel(level, food); err != nil {
		return err
	}
	s.BeginLevel()
	return nil
}

// BeginLevel marks a freshly generated level as ready and starts the intro delay
func (s *TurnScheduler) BeginLevel() {
	s.transition(components.TurnSetup)
	s.levelReady = true
	s.timer = s.timing.LevelStartDelay
	s.queue, s.cursor = nil, 0
}

// State returns who owns the current turn
func (s *TurnScheduler) State() components.TurnOwner {
	return s.state.Turn
}

// InIntro reports whether the current level is built and waiting out its intro delay
func (s *TurnScheduler) InIntro() bool {
	return s.state.Turn == components.TurnSetup && s.levelReady
}

// Update advances the state machine by dt seconds
func (s *TurnScheduler) Update(dt float64) error {
	if s.state.IsOver() {
		return nil
	}
	if player, ok := playerOf(s.world, s.state); ok && starved(player) {
		s.gameOver()
		return nil
	}

	switch s.state.Turn {
	case components.TurnSetup:
		return s.updateSetup(dt)
	case components.TurnPlayer:
		return s.updatePlayer()
	case components.TurnEnemies:
		return s.updateEnemies(dt)
	}
	return nil
}

func (s *TurnScheduler) updateSetup(dt float64) error {
	if s.nextLevel > 0 {
		s.timer -= dt
		if s.timer > 0 {
			return nil
		}
		level := s.nextLevel
		s.nextLevel = 0
		if err := s.levels.LoadLevel(level, s.state.Food); err != nil {
			return err
		}
		s.BeginLevel()
		return nil
	}

	if !s.levelReady {
		return nil
	}
	s.timer -= dt
	if s.timer > 0 {
		return nil
	}

	s.state.Enemies.Seal()
	s.transition(components.TurnPlayer)
	return nil
}

func (s *TurnScheduler) updatePlayer() error {
	dx, dy, ok := s.input.PollMoveIntent()
	if !ok {
		return nil
	}

	outcome, err := s.player.AttemptMove(dx, dy)
	if errors.Is(err, ErrInvalidDirection) {
		s.log.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Warn("ignoring move intent")
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case outcome.Starved:
		s.gameOver()
	case outcome.ReachedExit:
		s.levelReady = false
		s.nextLevel = s.state.Level + 1
		s.timer = s.timing.RestartLevelDelay
		s.transition(components.TurnSetup)
	case outcome.ConsumesTurn():
		s.startEnemyPhase()
	}
	return nil
}

func (s *TurnScheduler) startEnemyPhase() {
	s.queue = s.state.Enemies.Snapshot()
	s.cursor = 0
	s.timer = s.timing.TurnDelay
	if len(s.queue) == 0 {
		s.timer += s.timing.TurnDelay
	}
	s.transition(components.TurnEnemies)
}

// updateEnemies runs at most one enemy per call, each after the previous one's pause
func (s *TurnScheduler) updateEnemies(dt float64) error {
	s.timer -= dt
	if s.timer > 0 {
		return nil
	}

	if s.cursor >= len(s.queue) {
		s.queue, s.cursor = nil, 0
		s.transition(components.TurnPlayer)
		return nil
	}

	enemyID := s.queue[s.cursor]
	s.cursor++

	outcome, err := s.enemies.Act(enemyID)
	if errors.Is(err, ErrNoAgent) || errors.Is(err, ErrAgentInactive) {
		s.log.WithField("entity", enemyID).Warn("skipping missing enemy")
		s.timer = 0
		return nil
	}
	if err != nil {
		return err
	}

	if outcome.Starved {
		s.gameOver()
		return nil
	}
	s.timer = outcome.MoveDuration
	return nil
}

// gameOver is terminal: pending enemy steps are dropped and nothing is polled again
func (s *TurnScheduler) gameOver() {
	s.queue, s.cursor = nil, 0
	s.nextLevel = 0
	s.transition(components.TurnGameOver)
	s.world.EmitEvent(GameOverEvent{PlayerID: s.state.PlayerID, Level: s.state.Level})
	s.log.WithFields(logrus.Fields{"level": s.state.Level}).Info("game over")
}

func (s *TurnScheduler) transition(to components.TurnOwner) {
	from := s.state.Turn
	s.state.Turn = to
	if from == to {
		return
	}
	s.world.EmitEvent(TurnChangedEvent{From: from, To: to})
	s.log.WithFields(logrus.Fields{"level": s.state.Level, "from": from, "to": to}).Debug("turn changed")
}
