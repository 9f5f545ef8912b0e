package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(width, height int) *StartScreen {
	return &StartScreen{
		BaseScreen:    NewBaseScreen(width, height),
		options:       []string{"New Game", "Quit"},
		titleColor:    color.RGBA{255, 230, 150, 255},
		optionColor:   color.RGBA{200, 200, 200, 255},
		selectedColor: color.RGBA{255, 255, 255, 255},
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.selectedOption {
		case 0:
			return ErrNewGame
		case 1:
			return ErrQuit
		}
	}

	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})
	centerY := screen.Bounds().Dy() / 2

	drawCenteredText(screen, "SCAVENGER", centerY-3*glyphHeight, s.titleColor)

	optionSpacing := 24
	startY := centerY - (len(s.options)*optionSpacing)/2
	for i, option := range s.options {
		textColor := s.optionColor
		label := "  " + option
		if i == s.selectedOption {
			textColor = s.selectedColor
			label = "> " + option
		}
		drawCenteredText(screen, label, startY+i*optionSpacing, textColor)
	}
}
