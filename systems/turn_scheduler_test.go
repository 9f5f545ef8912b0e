package systems

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

// tick is one simulated frame; every configured delay is a multiple of it
const tick = 0.125

type TurnSchedulerSuite struct {
	suite.Suite
	f         *fixture
	input     *scriptedInput
	levels    *scriptedLevels
	scheduler *TurnScheduler
	turns     *[]ecs.Event
}

func TestTurnSchedulerSuite(t *testing.T) {
	suite.Run(t, new(TurnSchedulerSuite))
}

func (s *TurnSchedulerSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.input = &scriptedInput{}
	s.levels = &scriptedLevels{f: s.f}
	s.turns = s.f.record(EventTurnChanged)
	s.scheduler = NewTurnScheduler(s.f.world, s.f.state, s.f.player, s.f.enemies, s.input, s.levels, s.f.cfg.Timing, s.f.log)
}

// start loads level 1 with the given layout and waits out the intro
func (s *TurnSchedulerSuite) start(build func(f *fixture, level int)) {
	s.levels.build = build
	s.Require().NoError(s.scheduler.Start(1, 40))
	s.Equal(components.TurnSetup, s.scheduler.State())
	s.True(s.scheduler.InIntro())
	s.runUntil(components.TurnPlayer, 10)
}

// runUntil updates until the scheduler reaches want, failing after limit ticks
func (s *TurnSchedulerSuite) runUntil(want components.TurnOwner, limit int) int {
	for i := 1; i <= limit; i++ {
		s.Require().NoError(s.scheduler.Update(tick))
		if s.scheduler.State() == want {
			return i
		}
	}
	s.FailNow("scheduler never reached " + want.String())
	return 0
}

func (s *TurnSchedulerSuite) moveAndFinishTurn(dx, dy int) {
	s.input.push(dx, dy)
	s.Require().NoError(s.scheduler.Update(tick))
	if s.scheduler.State() == components.TurnEnemies {
		s.runUntil(components.TurnPlayer, 50)
	}
}

func threeEnemies(f *fixture, _ int) {
	f.spawn("enemy1", 6, 1)
	f.spawn("enemy2", 6, 3)
	f.spawn("enemy1", 6, 5)
}

func (s *TurnSchedulerSuite) TestIntroDelayThenSealedPlayerTurn() {
	s.levels.build = threeEnemies
	s.Require().NoError(s.scheduler.Start(1, 40))

	// LevelStartDelay is four ticks
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.scheduler.Update(tick))
		s.Equal(components.TurnSetup, s.scheduler.State())
	}
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnPlayer, s.scheduler.State())
	s.False(s.scheduler.InIntro())
	s.True(s.f.state.Enemies.Sealed())
	s.Zero(s.input.polls, "input must not be polled during setup")

	_, err := s.f.spawner.Spawn("enemy1", generation.Cell{X: 3, Y: 3})
	s.ErrorIs(err, components.ErrRegistrySealed)
	s.Equal(3, s.f.state.Enemies.Len())
}

func (s *TurnSchedulerSuite) TestPlayerTurnWaitsForInput() {
	s.start(nil)
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.scheduler.Update(tick))
	}
	s.Equal(components.TurnPlayer, s.scheduler.State())
	s.Equal(5, s.input.polls)
	s.Equal(40, s.f.food())
}

func (s *TurnSchedulerSuite) TestEnemiesActOnceEachInRegistrationOrder() {
	s.start(threeEnemies)
	registered := s.f.state.Enemies.Snapshot()
	moves := s.f.record(EventMovement)

	s.input.push(0, 1)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnEnemies, s.scheduler.State())
	s.runUntil(components.TurnPlayer, 50)

	var order []ecs.EntityID
	for _, e := range *moves {
		if id := e.(EntityMoveEvent).EntityID; id != s.f.state.PlayerID {
			order = append(order, id)
		}
	}
	s.Equal(registered, order)
}

func (s *TurnSchedulerSuite) TestEnemyPhaseTiming() {
	s.start(threeEnemies)

	s.input.push(0, 1)
	s.Require().NoError(s.scheduler.Update(tick))
	// TurnDelay, then each enemy followed by its MoveDuration pause
	ticks := s.runUntil(components.TurnPlayer, 50)
	s.Equal(2+3, ticks)
}

func (s *TurnSchedulerSuite) TestEmptyEnemyPhaseWaitsTwice() {
	s.start(nil)

	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnEnemies, s.scheduler.State())
	s.Equal(4, s.runUntil(components.TurnPlayer, 10))
}

func (s *TurnSchedulerSuite) TestEnemiesSkipEveryOtherTurn() {
	s.start(threeEnemies)
	moves := s.f.record(EventMovement)

	countEnemyMoves := func() int {
		n := 0
		for _, e := range *moves {
			if e.(EntityMoveEvent).EntityID != s.f.state.PlayerID {
				n++
			}
		}
		*moves = (*moves)[:0]
		return n
	}

	s.moveAndFinishTurn(0, 1)
	s.Equal(3, countEnemyMoves())
	s.moveAndFinishTurn(0, -1)
	s.Equal(0, countEnemyMoves())
	s.moveAndFinishTurn(0, 1)
	s.Equal(3, countEnemyMoves())
}

func (s *TurnSchedulerSuite) TestWallChopAndSilentBumpBothConsumeTurn() {
	s.start(func(f *fixture, _ int) {
		f.spawn("wall1", 1, 0)
		f.spawn("outer1", -1, 0)
	})

	s.moveAndFinishTurn(-1, 0)
	s.Equal(components.TurnPlayer, s.scheduler.State())
	s.Equal(39, s.f.food())

	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnEnemies, s.scheduler.State())
	s.Equal(38, s.f.food())
}

// boxedIn corners the player at the origin behind two zombies
func boxedIn(f *fixture, _ int) {
	f.ring(8, 8)
	f.spawn("exit", 7, 7)
	f.spawn("enemy1", 1, 0)
	f.spawn("enemy1", 0, 1)
}

func (s *TurnSchedulerSuite) TestBoxedInPlayerHandsTurnToEnemies() {
	s.start(boxedIn)
	attacks := s.f.record(EventEnemyAttack)

	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnEnemies, s.scheduler.State())
	s.runUntil(components.TurnPlayer, 50)

	s.Len(*attacks, 2)
	s.Equal(39-10-10, s.f.food())
}

func (s *TurnSchedulerSuite) TestBoxedInBotIsKilledNotStarved() {
	s.levels.build = boxedIn
	bot := NewTurnScheduler(s.f.world, s.f.state, s.f.player, s.f.enemies,
		NewAutoplayInput(s.f.world, s.f.state), s.levels, s.f.cfg.Timing, s.f.log)
	attacks := s.f.record(EventEnemyAttack)

	s.Require().NoError(bot.Start(1, 40))
	for i := 0; i < 200 && bot.State() != components.TurnGameOver; i++ {
		s.Require().NoError(bot.Update(tick))
	}

	s.Equal(components.TurnGameOver, bot.State())
	s.Require().NotEmpty(*attacks)
	s.LessOrEqual((*attacks)[len(*attacks)-1].(EnemyAttackEvent).Food, 0, "the last hit ends the run")
}

func (s *TurnSchedulerSuite) TestInvalidIntentIsIgnored() {
	s.start(nil)

	s.input.push(1, 1)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnPlayer, s.scheduler.State())
	s.Equal(40, s.f.food())

	var warned bool
	for _, entry := range s.f.hook.AllEntries() {
		warned = warned || entry.Level == logrus.WarnLevel
	}
	s.True(warned)
}

func (s *TurnSchedulerSuite) TestFoodReachingZeroEndsGame() {
	s.start(nil)
	player, _ := playerOf(s.f.world, s.f.state)
	setFood(s.f.state, player, 1)
	over := s.f.record(EventGameOver)

	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnGameOver, s.scheduler.State())
	s.True(s.f.state.IsOver())
	s.Equal(0, s.f.food())
	s.Require().Len(*over, 1)
	s.Equal(GameOverEvent{PlayerID: s.f.state.PlayerID, Level: 1}, (*over)[0])

	polls := s.input.polls
	s.input.push(0, 1)
	for i := 0; i < 10; i++ {
		s.Require().NoError(s.scheduler.Update(tick))
	}
	s.Equal(polls, s.input.polls, "no input is polled after game over")
	s.Len(*over, 1)
}

func (s *TurnSchedulerSuite) TestEnemyKillDropsRemainingEnemies() {
	s.start(func(f *fixture, _ int) {
		f.spawn("enemy2", 1, 1)
		f.spawn("enemy1", 6, 6)
	})
	player, _ := playerOf(s.f.world, s.f.state)
	setFood(s.f.state, player, 21)
	moves := s.f.record(EventMovement)

	// stepping down puts the player next to the first enemy
	s.input.push(0, 1)
	s.Require().NoError(s.scheduler.Update(tick))
	s.runUntil(components.TurnGameOver, 10)

	s.Equal(0, s.f.food())
	for _, e := range *moves {
		s.Equal(s.f.state.PlayerID, e.(EntityMoveEvent).EntityID, "second enemy must not act")
	}
}

func (s *TurnSchedulerSuite) TestExitRestartsNextLevelWithCarriedFood() {
	s.start(func(f *fixture, level int) {
		f.spawn("exit", 1, 0)
	})

	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.Equal(components.TurnSetup, s.scheduler.State())
	s.False(s.scheduler.InIntro())
	s.Len(s.levels.loads, 1)

	// RestartLevelDelay is four ticks; the load happens on the fourth
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.scheduler.Update(tick))
		s.Len(s.levels.loads, 1)
	}
	s.Require().NoError(s.scheduler.Update(tick))
	s.Require().Len(s.levels.loads, 2)
	s.Equal([2]int{2, 39}, s.levels.loads[1])
	s.Equal(2, s.f.state.Level)
	s.True(s.scheduler.InIntro())

	s.runUntil(components.TurnPlayer, 10)
	s.Equal(39, s.f.food())
}

func (s *TurnSchedulerSuite) TestLevelLoadFailureSurfaces() {
	s.levels.err = errors.New("no room")
	s.Error(s.scheduler.Start(1, 40))

	s.levels.err = nil
	s.start(func(f *fixture, _ int) { f.spawn("exit", 1, 0) })
	s.levels.err = errors.New("no room")
	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))

	var err error
	for i := 0; i < 10 && err == nil; i++ {
		err = s.scheduler.Update(tick)
	}
	s.Error(err)
}

func (s *TurnSchedulerSuite) TestTurnChangedEvents() {
	s.start(nil)
	s.input.push(1, 0)
	s.Require().NoError(s.scheduler.Update(tick))
	s.runUntil(components.TurnPlayer, 10)

	var path []components.TurnOwner
	for _, e := range *s.turns {
		path = append(path, e.(TurnChangedEvent).To)
	}
	require.Equal(s.T(), []components.TurnOwner{components.TurnPlayer, components.TurnEnemies, components.TurnPlayer}, path)
}
