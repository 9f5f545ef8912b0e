package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held keys repeat after keyRepeatDelay ticks, then every keyRepeatInterval ticks
const (
	keyRepeatDelay    = 15
	keyRepeatInterval = 6
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
)

// KeyboardInput reads move intents from the keyboard. When a horizontal and a vertical key
// are both down the horizontal one wins, so the result is never diagonal.
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// PollMoveIntent implements systems.InputSource
func (k *KeyboardInput) PollMoveIntent() (int, int, bool) {
	dx := axis(leftKeys, rightKeys)
	if dx != 0 {
		return dx, 0, true
	}
	// screen y grows downward, matching the board
	dy := axis(upKeys, downKeys)
	if dy != 0 {
		return 0, dy, true
	}
	return 0, 0, false
}

func axis(negative, positive []ebiten.Key) int {
	v := 0
	if anyTriggered(negative) {
		v--
	}
	if anyTriggered(positive) {
		v++
	}
	return v
}

func anyTriggered(keys []ebiten.Key) bool {
	for _, key := range keys {
		if triggered(key) {
			return true
		}
	}
	return false
}

// triggered is true on the press tick and on each repeat tick while held
func triggered(key ebiten.Key) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	d := inpututil.KeyPressDuration(key)
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
