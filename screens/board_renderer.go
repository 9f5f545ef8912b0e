package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/systems"
)

// Draw order, bottom first
var (
	backgroundLayers = []string{components.TagFloor, components.TagOuterWall}
	objectLayers     = []string{components.TagExit, components.TagPickup, components.TagWall, components.TagEnemy, components.TagPlayer}
)

// BoardRenderer draws the board, its objects and the status panel under it
type BoardRenderer struct {
	catalog  *data.TileCatalog
	messages *systems.MessageLog
	columns  int
	rows     int
	// colors caches parsed template colors by tile kind
	colors map[string]color.RGBA
}

// NewBoardRenderer creates a renderer for a board of the given size
func NewBoardRenderer(catalog *data.TileCatalog, messages *systems.MessageLog, columns, rows int) *BoardRenderer {
	return &BoardRenderer{
		catalog:  catalog,
		messages: messages,
		columns:  columns,
		rows:     rows,
		colors:   make(map[string]color.RGBA),
	}
}

// Draw renders the world and the status panel
func (r *BoardRenderer) Draw(world *ecs.World, state *components.GameState, screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, tag := range backgroundLayers {
		for _, entity := range world.GetEntitiesWithTag(tag) {
			r.drawBackground(world, screen, entity.ID)
		}
	}
	for _, tag := range objectLayers {
		for _, entity := range world.GetEntitiesWithTag(tag) {
			r.drawObject(world, screen, entity.ID)
		}
	}

	r.drawStatusPanel(screen, state)
}

// tile looks up what an entity looks like and where it is on screen
func (r *BoardRenderer) tile(world *ecs.World, id ecs.EntityID) (*data.TileTemplate, float32, float32, bool) {
	pos, ok := ecs.Get[*components.PositionComponent](world, id, components.Position)
	if !ok {
		return nil, 0, 0, false
	}
	tile, ok := ecs.Get[*components.TileComponent](world, id, components.Tile)
	if !ok {
		return nil, 0, 0, false
	}
	template, err := r.catalog.Get(tile.Kind)
	if err != nil {
		return nil, 0, 0, false
	}
	// the outer ring sits at -1, so everything shifts by one tile
	x := float32((pos.X + 1) * config.TileSize)
	y := float32((pos.Y + 1) * config.TileSize)
	return template, x, y, true
}

func (r *BoardRenderer) drawBackground(world *ecs.World, screen *ebiten.Image, id ecs.EntityID) {
	template, x, y, ok := r.tile(world, id)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, x, y, config.TileSize, config.TileSize, r.color(template), false)
}

func (r *BoardRenderer) drawObject(world *ecs.World, screen *ebiten.Image, id ecs.EntityID) {
	template, x, y, ok := r.tile(world, id)
	if !ok {
		return
	}
	tint := r.color(template)
	if template.Category == data.CategoryWall {
		inset := float32(config.TileSize) / 8
		vector.DrawFilledRect(screen, x+inset, y+inset, config.TileSize-2*inset, config.TileSize-2*inset, color.RGBA{40, 30, 20, 255}, false)
		if wall, ok := ecs.Get[*components.WallComponent](world, id, components.Wall); ok && wall.Damaged(template.HP) {
			r.drawCracks(screen, x+inset, y+inset, config.TileSize-2*inset)
			tint = dimmed(tint)
		}
	}
	gx := int(x) + (config.TileSize-glyphWidth)/2
	gy := int(y) + (config.TileSize-glyphHeight)/2
	drawText(screen, template.Glyph, gx, gy, tint)
}

// drawCracks marks a wall that has been chopped at least once
func (r *BoardRenderer) drawCracks(screen *ebiten.Image, x, y, size float32) {
	crack := color.RGBA{90, 70, 50, 255}
	vector.StrokeLine(screen, x, y, x+size/2, y+size/2, 1, crack, false)
	vector.StrokeLine(screen, x+size/2, y+size/2, x+size, y+size/3, 1, crack, false)
	vector.StrokeLine(screen, x+size/2, y+size/2, x+size/3, y+size, 1, crack, false)
}

func dimmed(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

func (r *BoardRenderer) color(template *data.TileTemplate) color.RGBA {
	if c, ok := r.colors[template.ID]; ok {
		return c
	}
	c := data.ParseHexColor(template.Color)
	r.colors[template.ID] = c
	return c
}

// drawStatusPanel prints the food counter and the latest message under the board
func (r *BoardRenderer) drawStatusPanel(screen *ebiten.Image, state *components.GameState) {
	top := (r.rows + 2) * config.TileSize
	drawText(screen, fmt.Sprintf("Food: %d", state.Food), 8, top+4, color.White)
	drawText(screen, fmt.Sprintf("Day %d", state.Level), (r.columns+2)*config.TileSize-8-8*glyphWidth, top+4, color.RGBA{218, 165, 32, 255})

	if recent := r.messages.Recent(1); len(recent) > 0 {
		drawText(screen, recent[0].Text, 8, top+4+glyphHeight, recent[0].Color())
	}
}
