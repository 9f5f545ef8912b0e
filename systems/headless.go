package systems

import (
	"context"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
)

// DefaultStep matches one frame at 60 ticks per second
const DefaultStep = 1.0 / 60.0

// HeadlessOptions bounds a headless run
type HeadlessOptions struct {
	// Step is the simulated seconds per update, DefaultStep when zero
	Step float64
	// MaxLevels stops the run once this level is reached; zero means no limit
	MaxLevels int
	// MaxUpdates guards against runs that never end; zero means no limit
	MaxUpdates int
}

// HeadlessResult summarizes a headless run
type HeadlessResult struct {
	Level   int
	Food    int
	Updates int
	Over    bool
}

// RunHeadless drives the scheduler at a fixed step until the game ends, the level limit is
// reached, the update budget runs out or ctx is done.
func RunHeadless(ctx context.Context, scheduler *TurnScheduler, state *components.GameState, opts HeadlessOptions, log logrus.FieldLogger) (HeadlessResult, error) {
	step := opts.Step
	if step <= 0 {
		step = DefaultStep
	}

	var result HeadlessResult
	summarize := func() HeadlessResult {
		result.Level, result.Food, result.Over = state.Level, state.Food, state.IsOver()
		return result
	}

	for {
		if err := ctx.Err(); err != nil {
			return summarize(), err
		}
		if state.IsOver() {
			break
		}
		if opts.MaxLevels > 0 && state.Level >= opts.MaxLevels && state.Turn == components.TurnPlayer {
			break
		}
		if opts.MaxUpdates > 0 && result.Updates >= opts.MaxUpdates {
			log.WithField("updates", result.Updates).Warn("update budget exhausted")
			break
		}

		if err := scheduler.Update(step); err != nil {
			return summarize(), err
		}
		result.Updates++
	}

	log.WithFields(logrus.Fields{
		"level":   state.Level,
		"food":    state.Food,
		"updates": result.Updates,
		"over":    state.IsOver(),
	}).Info("headless run finished")
	return summarize(), nil
}
