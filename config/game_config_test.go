package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr error
	}{
		{"walls max below min", func(c *GameConfig) { c.Board.WallCount = Range{Min: 5, Max: 4} }, ErrInvalidRange},
		{"food max below min", func(c *GameConfig) { c.Board.FoodCount = Range{Min: 2, Max: 1} }, ErrInvalidRange},
		{"negative min", func(c *GameConfig) { c.Board.FoodCount = Range{Min: -1, Max: 1} }, ErrInvalidRange},
		{"empty range of zero", func(c *GameConfig) { c.Board.WallCount = Range{} }, nil},
		{"tiny board", func(c *GameConfig) { c.Board.Columns = 2 }, ErrInvalidValue},
		{"negative delay", func(c *GameConfig) { c.Timing.TurnDelay = -0.1 }, ErrInvalidValue},
		{"no food", func(c *GameConfig) { c.Player.StartingFood = 0 }, ErrInvalidValue},
		{"volume too loud", func(c *GameConfig) { c.Volume = 1.5 }, ErrInvalidValue},
		{"muted", func(c *GameConfig) { c.Volume = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	body := `{"board": {"columns": 10, "rows": 12, "wallCount": {"min": 2, "max": 3}, "foodCount": {"min": 1, "max": 5}}, "seed": 7}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Columns)
	assert.Equal(t, 12, cfg.Board.Rows)
	assert.Equal(t, Range{Min: 2, Max: 3}, cfg.Board.WallCount)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 100, cfg.Player.StartingFood)
}

func TestLoadRejectsInvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"board": {"wallCount": {"min": 9, "max": 5}}}`), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestGetWindowSize(t *testing.T) {
	w, h := GetWindowSize(8, 8)
	assert.Equal(t, 10*TileSize, w)
	assert.Greater(t, h, 10*TileSize)
}
