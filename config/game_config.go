package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInvalidRange is returned for a [min,max] pair with max < min or a negative min
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidValue is returned for a scalar setting outside its allowed range
	ErrInvalidValue = errors.New("invalid value")
)

// Range is an inclusive [Min, Max] count range
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Validate rejects empty or negative ranges
func (r Range) Validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("[%d,%d]: %w", r.Min, r.Max, ErrInvalidRange)
	}
	return nil
}

// BoardConfig controls level generation
type BoardConfig struct {
	Columns   int   `json:"columns"`
	Rows      int   `json:"rows"`
	WallCount Range `json:"wallCount"`
	FoodCount Range `json:"foodCount"`
}

// PlayerConfig tunes the player agent
type PlayerConfig struct {
	StartingFood  int `json:"startingFood"`
	WallDamage    int `json:"wallDamage"`
	PointsPerFood int `json:"pointsPerFood"`
	PointsPerSoda int `json:"pointsPerSoda"`
}

// TimingConfig holds every delay, in seconds
type TimingConfig struct {
	MoveDuration      float64 `json:"moveDuration"`
	TurnDelay         float64 `json:"turnDelay"`
	LevelStartDelay   float64 `json:"levelStartDelay"`
	RestartLevelDelay float64 `json:"restartLevelDelay"`
}

// GameConfig is the full, validated game configuration
type GameConfig struct {
	Board  BoardConfig  `json:"board"`
	Player PlayerConfig `json:"player"`
	Timing TimingConfig `json:"timing"`
	// TileDir optionally points at a directory of JSON tile templates
	TileDir string `json:"tileDir"`
	// Seed for level generation; 0 picks a time based seed
	Seed int64 `json:"seed"`
	// MusicPath optionally names an .mp3 or .ogg file looped as background music
	MusicPath string `json:"music"`
	// Volume scales both music and effects, 0 to 1
	Volume float64 `json:"volume"`
}

// Default returns the classic 8x8 configuration
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Columns:   8,
			Rows:      8,
			WallCount: Range{Min: 5, Max: 9},
			FoodCount: Range{Min: 1, Max: 5},
		},
		Player: PlayerConfig{
			StartingFood:  100,
			WallDamage:    1,
			PointsPerFood: 10,
			PointsPerSoda: 20,
		},
		Timing: TimingConfig{
			MoveDuration:      0.1,
			TurnDelay:         0.1,
			LevelStartDelay:   2,
			RestartLevelDelay: 1,
		},
		Volume: 0.5,
	}
}

// Validate checks every setting by range only
func (c GameConfig) Validate() error {
	if c.Board.Columns < 3 || c.Board.Rows < 3 {
		return fmt.Errorf("board %dx%d must be at least 3x3: %w", c.Board.Columns, c.Board.Rows, ErrInvalidValue)
	}
	if err := c.Board.WallCount.Validate(); err != nil {
		return fmt.Errorf("wall count: %w", err)
	}
	if err := c.Board.FoodCount.Validate(); err != nil {
		return fmt.Errorf("food count: %w", err)
	}

	scalars := []struct {
		name  string
		value float64
		min   float64
	}{
		{"starting food", float64(c.Player.StartingFood), 1},
		{"wall damage", float64(c.Player.WallDamage), 0},
		{"points per food", float64(c.Player.PointsPerFood), 0},
		{"points per soda", float64(c.Player.PointsPerSoda), 0},
		{"move duration", c.Timing.MoveDuration, 0},
		{"turn delay", c.Timing.TurnDelay, 0},
		{"level start delay", c.Timing.LevelStartDelay, 0},
		{"restart level delay", c.Timing.RestartLevelDelay, 0},
	}
	for _, s := range scalars {
		if s.value < s.min {
			return fmt.Errorf("%s %v below %v: %w", s.name, s.value, s.min, ErrInvalidValue)
		}
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v outside [0, 1]: %w", c.Volume, ErrInvalidValue)
	}
	return nil
}

// Load reads a JSON config file over the defaults and validates the result
func Load(path string) (GameConfig, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
