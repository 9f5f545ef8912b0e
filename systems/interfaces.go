package systems

// InputSource supplies the player's move intent. It is only polled during the player's turn.
type InputSource interface {
	PollMoveIntent() (dx, dy int, ok bool)
}

// LevelTransition builds a level, carrying the player's food over from the previous one
type LevelTransition interface {
	LoadLevel(level, carriedFood int) error
}
