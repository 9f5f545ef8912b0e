package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-scavenger/systems"
)

// LogScreen shows the full message history in a scrollable modal window
type LogScreen struct {
	*BaseScreen
	messages     *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewLogScreen creates a history window over the given log
func NewLogScreen(messages *systems.MessageLog, width, height int) *LogScreen {
	return &LogScreen{
		BaseScreen: NewBaseScreen(width, height),
		messages:   messages,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 255},
		textColor:  color.White,
	}
}

// Update handles input for the log screen
func (s *LogScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

func (s *LogScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

func (s *LogScreen) scrollDown() {
	if s.scrollOffset < len(s.messages.Lines)-1 {
		s.scrollOffset++
	}
}

// Draw renders the log screen
func (s *LogScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, color.White, false)

	title := "MESSAGE LOG"
	drawText(screen, title, x+(s.width-len(title)*glyphWidth)/2, y+4, s.textColor)

	messages := s.messages.Lines
	startY := 30
	lineHeight := glyphHeight
	maxLines := (s.height - startY - 20) / lineHeight

	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(0, len(messages)-maxLines)
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		drawText(screen, msg.Text, x+10, y+startY+i*lineHeight, msg.Color())
	}

	if len(messages) > maxLines {
		area := float32(s.height - startY)
		barHeight := float32(maxLines) / float32(len(messages)) * area
		barY := float32(y+startY) + float32(startIdx)/float32(len(messages))*area
		vector.DrawFilledRect(screen, float32(x+s.width-10), barY, 5, barHeight, color.White, false)
	}

	drawText(screen, "Up/Down: Scroll  ESC: Close", x+10, y+s.height-20, s.textColor)
}

// Layout implements the Screen interface
func (s *LogScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
