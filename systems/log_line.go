package systems

import (
	"image/color"

	"ebiten-scavenger/components"
)

// LineKind says which game event produced a log line
type LineKind int

const (
	LineStatus LineKind = iota
	LineDay
	LineFood
	LineSoda
	LineHit
	LineChop
	LineStarved
)

// lineColors follow the tiles the events come from
var lineColors = map[LineKind]color.RGBA{
	LineStatus:  {200, 200, 200, 255},
	LineDay:     {218, 165, 32, 255},
	LineFood:    {154, 205, 50, 255},
	LineSoda:    {100, 149, 237, 255},
	LineHit:     {220, 20, 60, 255},
	LineChop:    {160, 82, 45, 255},
	LineStarved: {255, 255, 0, 255},
}

// LogLine is one entry of the message log
type LogLine struct {
	Text string
	Kind LineKind
	// Day is the level the line was written on
	Day int
}

// Color is the tint the line is drawn with. Unknown kinds fall back to the status gray.
func (l LogLine) Color() color.RGBA {
	if c, ok := lineColors[l.Kind]; ok {
		return c
	}
	return lineColors[LineStatus]
}

func pickupLine(kind components.PickupKind) LineKind {
	if kind == components.PickupSoda {
		return LineSoda
	}
	return LineFood
}
