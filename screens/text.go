package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// drawText prints text in a color. The debug font only draws white, so the line is rendered
// to its own image and tinted on the way to dst.
func drawText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	if text == "" {
		return
	}
	line := ebiten.NewImage(len(text)*glyphWidth+glyphWidth, glyphHeight)
	defer line.Deallocate()
	ebitenutil.DebugPrintAt(line, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(line, op)
}

// drawCenteredText prints text centered horizontally on dst
func drawCenteredText(dst *ebiten.Image, text string, y int, clr color.Color) {
	x := (dst.Bounds().Dx() - len(text)*glyphWidth) / 2
	drawText(dst, text, x, y, clr)
}
