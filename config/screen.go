package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 32

	// Rows of text under the board for food and messages
	StatusRows = 3
)

// GetWindowSize returns the window size in pixels for a board of the given size,
// including its outer wall ring and the status panel.
func GetWindowSize(columns, rows int) (width, height int) {
	width = (columns + 2) * TileSize
	height = (rows+2)*TileSize + StatusRows*TileSize/2
	return width, height
}
