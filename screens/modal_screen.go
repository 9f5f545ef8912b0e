package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen is a centered popup drawn over the screens below it. With a zero size it
// covers the whole screen, which is how the level intro hides the board while it is built.
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(width, height),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200},
		textColor:  color.White,
	}
}

// NewLevelIntroScreen creates the opaque full screen card shown during level setup
func NewLevelIntroScreen(title string) *ModalScreen {
	m := NewModalScreen(title, "", 0, 0)
	m.background = color.Black
	return m
}

// SetTitle changes the headline text
func (s *ModalScreen) SetTitle(title string) {
	s.title = title
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	w, h := s.width, s.height
	if w == 0 || h == 0 {
		w, h = screenWidth, screenHeight
	}
	x := float32(screenWidth-w) / 2
	y := float32(screenHeight-h) / 2

	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), s.background, false)
	if w != screenWidth || h != screenHeight {
		vector.StrokeRect(screen, x, y, float32(w), float32(h), 2, color.White, false)
	}

	titleY := int(y) + 10
	if s.content == "" {
		titleY = int(y) + h/2 - glyphHeight/2
	}
	drawCenteredText(screen, s.title, titleY, s.textColor)
	if s.content != "" {
		drawText(screen, s.content, int(x)+10, int(y)+30, s.textColor)
	}
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	return nil
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
