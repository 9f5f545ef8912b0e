package screens

import "errors"

// Screen transition signals returned from Update
var (
	ErrNewGame     = errors.New("new game")
	ErrQuit        = errors.New("quit")
	ErrGameOver    = errors.New("game over")
	ErrCloseScreen = errors.New("close screen")
)
