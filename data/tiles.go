package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
)

// ErrUnknownTile is returned when a tile ID is not in the catalog
var ErrUnknownTile = errors.New("unknown tile")

// Category groups tiles that the generator draws from together
type Category string

const (
	CategoryFloor     Category = "floor"
	CategoryOuterWall Category = "outer_wall"
	CategoryWall      Category = "wall"
	CategoryFood      Category = "food"
	CategoryEnemy     Category = "enemy"
	CategoryExit      Category = "exit"
	CategoryPlayer    Category = "player"
)

// TileTemplate describes one spawnable kind of tile, object or agent
type TileTemplate struct {
	ID       string   `json:"id"`       // Unique identifier, used as the tile kind
	Name     string   `json:"name"`     // Display name
	Category Category `json:"category"` // Which generator set the tile belongs to
	Glyph    string   `json:"glyph"`    // Character drawn for the tile
	Color    string   `json:"color"`    // Color in hex format (e.g. "#00FF00")

	HP           int    `json:"hp"`           // Walls: hits before the wall breaks
	AttackDamage int    `json:"attackDamage"` // Enemies: food taken per hit
	Pickup       string `json:"pickup"`       // Food: "food" or "soda"
}

// Validate checks the fields each category depends on
func (t *TileTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tile template missing id")
	}
	switch t.Category {
	case CategoryFloor, CategoryOuterWall, CategoryExit, CategoryPlayer:
	case CategoryWall:
		if t.HP <= 0 {
			return fmt.Errorf("wall tile '%s' needs positive hp", t.ID)
		}
	case CategoryFood:
		if t.Pickup != "food" && t.Pickup != "soda" {
			return fmt.Errorf("food tile '%s' has pickup %q, want food or soda", t.ID, t.Pickup)
		}
	case CategoryEnemy:
		if t.AttackDamage < 0 {
			return fmt.Errorf("enemy tile '%s' has negative attackDamage", t.ID)
		}
	default:
		return fmt.Errorf("tile '%s' has unknown category %q", t.ID, t.Category)
	}
	return nil
}

// TileCatalog manages all tile templates
type TileCatalog struct {
	Templates map[string]*TileTemplate
}

// NewTileCatalog creates an empty catalog
func NewTileCatalog() *TileCatalog {
	return &TileCatalog{Templates: make(map[string]*TileTemplate)}
}

// DefaultTileCatalog returns the built-in tile set
func DefaultTileCatalog() *TileCatalog {
	c := NewTileCatalog()
	for _, t := range []TileTemplate{
		{ID: "floor1", Name: "Dirt", Category: CategoryFloor, Glyph: ".", Color: "#3a2f25"},
		{ID: "floor2", Name: "Gravel", Category: CategoryFloor, Glyph: ".", Color: "#46382b"},
		{ID: "floor3", Name: "Moss", Category: CategoryFloor, Glyph: ",", Color: "#2f3a25"},
		{ID: "outer1", Name: "Rock", Category: CategoryOuterWall, Glyph: "#", Color: "#5a5a5a"},
		{ID: "outer2", Name: "Boulder", Category: CategoryOuterWall, Glyph: "#", Color: "#4c4c4c"},
		{ID: "outer3", Name: "Bedrock", Category: CategoryOuterWall, Glyph: "#", Color: "#3c3c3c"},
		{ID: "wall1", Name: "Rubble", Category: CategoryWall, Glyph: "%", Color: "#8b5a2b", HP: 4},
		{ID: "wall2", Name: "Crate", Category: CategoryWall, Glyph: "=", Color: "#a0522d", HP: 4},
		{ID: "wall3", Name: "Cactus", Category: CategoryWall, Glyph: "Y", Color: "#2e8b57", HP: 4},
		{ID: "wall4", Name: "Barrel", Category: CategoryWall, Glyph: "0", Color: "#8b4513", HP: 4},
		{ID: "food", Name: "Food", Category: CategoryFood, Glyph: "f", Color: "#ffa500", Pickup: "food"},
		{ID: "soda", Name: "Soda", Category: CategoryFood, Glyph: "s", Color: "#00bfff", Pickup: "soda"},
		{ID: "enemy1", Name: "Zombie", Category: CategoryEnemy, Glyph: "z", Color: "#7cfc00", AttackDamage: 10},
		{ID: "enemy2", Name: "Vampire", Category: CategoryEnemy, Glyph: "V", Color: "#dc143c", AttackDamage: 20},
		{ID: "exit", Name: "Exit", Category: CategoryExit, Glyph: ">", Color: "#ffffff"},
		{ID: "player", Name: "Scavenger", Category: CategoryPlayer, Glyph: "@", Color: "#ffff00"},
	} {
		template := t
		c.Templates[template.ID] = &template
	}
	return c
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (c *TileCatalog) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read tile directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := c.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load tile from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single tile template from a JSON file
func (c *TileCatalog) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template TileTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}
	if err := template.Validate(); err != nil {
		return err
	}

	c.Templates[template.ID] = &template
	return nil
}

// Get returns a template by ID
func (c *TileCatalog) Get(id string) (*TileTemplate, error) {
	template, ok := c.Templates[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownTile)
	}
	return template, nil
}

// Kinds returns the IDs in a category, sorted so seeded generation is reproducible
func (c *TileCatalog) Kinds(category Category) []string {
	kinds := make([]string, 0)
	for id, template := range c.Templates {
		if template.Category == category {
			kinds = append(kinds, id)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}

	return
}
