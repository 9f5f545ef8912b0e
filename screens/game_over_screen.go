package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-scavenger/systems"
)

// GameOverScreen shows how long the run lasted
type GameOverScreen struct {
	*BaseScreen
	level int
}

// NewGameOverScreen creates a game over card for a run that ended on level
func NewGameOverScreen(level, width, height int) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(width, height),
		level:      level,
	}
}

// Update waits for the player to start over or quit
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	h := screen.Bounds().Dy()
	drawCenteredText(screen, systems.GameOverText(s.level), h/2-glyphHeight, color.White)
	drawCenteredText(screen, "Enter: play again  Esc: quit", h/2+glyphHeight, color.RGBA{200, 200, 200, 255})
}
