package systems

import (
	"fmt"

	"ebiten-scavenger/ecs"
)

// MessageLog stores the player-facing text lines
type MessageLog struct {
	Lines []LogLine
	Limit int
	day   int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Lines: []LogLine{},
		Limit: 100,
	}
}

// Initialize subscribes the log to the events that produce on-screen text
func (ml *MessageLog) Initialize(world *ecs.World) {
	em := world.GetEventManager()
	em.Subscribe(EventLevelStarted, func(event ecs.Event) {
		ml.day = event.(LevelStartedEvent).Level
		ml.Write(LineDay, LevelIntroText(ml.day))
	})
	em.Subscribe(EventItemPickup, func(event ecs.Event) {
		e := event.(ItemPickupEvent)
		ml.Write(pickupLine(e.Kind), fmt.Sprintf("+%d Food: %d", e.Points, e.Food))
	})
	em.Subscribe(EventEnemyAttack, func(event ecs.Event) {
		e := event.(EnemyAttackEvent)
		ml.Write(LineHit, fmt.Sprintf("-%d Food: %d", e.Damage, e.Food))
	})
	em.Subscribe(EventWallDestroyed, func(ecs.Event) {
		ml.Write(LineChop, "The way is clear.")
	})
	em.Subscribe(EventGameOver, func(event ecs.Event) {
		ml.Write(LineStarved, GameOverText(event.(GameOverEvent).Level))
	})
}

// LevelIntroText is shown while a level is being set up
func LevelIntroText(level int) string {
	return fmt.Sprintf("Day %d", level)
}

// GameOverText is the closing line of a run
func GameOverText(level int) string {
	return fmt.Sprintf("After %d days, you starved.", level)
}

// Add adds a status line
func (ml *MessageLog) Add(message string) {
	ml.Write(LineStatus, message)
}

// Write appends a line of the given kind stamped with the current day
func (ml *MessageLog) Write(kind LineKind, message string) {
	ml.Lines = append(ml.Lines, LogLine{Text: message, Kind: kind, Day: ml.day})

	if len(ml.Lines) > ml.Limit {
		ml.Lines = ml.Lines[len(ml.Lines)-ml.Limit:]
	}
}

// Recent gets the n most recent lines, newest first
func (ml *MessageLog) Recent(n int) []LogLine {
	if n > len(ml.Lines) {
		n = len(ml.Lines)
	}

	result := make([]LogLine, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Lines[len(ml.Lines)-1-i]
	}

	return result
}

// Last returns the newest line's text, or "" when empty
func (ml *MessageLog) Last() string {
	if len(ml.Lines) == 0 {
		return ""
	}
	return ml.Lines[len(ml.Lines)-1].Text
}

// Clear drops every line
func (ml *MessageLog) Clear() {
	ml.Lines = []LogLine{}
}
