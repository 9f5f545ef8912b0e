package generation

import "fmt"

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board is the static layout of one level. Floor cells span 0..Columns-1 x 0..Rows-1 and
// are ringed by outer walls at x = -1, x = Columns, y = -1 and y = Rows.
type Board struct {
	Columns int
	Rows    int
	Exit    Cell
}

// NewBoard creates a board with the exit at the far corner from the origin
func NewBoard(columns, rows int) *Board {
	return &Board{
		Columns: columns,
		Rows:    rows,
		Exit:    Cell{X: columns - 1, Y: rows - 1},
	}
}

// InBounds reports whether c is a floor cell
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Columns && c.Y >= 0 && c.Y < b.Rows
}

// IsPerimeter reports whether c lies on the outer wall ring
func (b *Board) IsPerimeter(c Cell) bool {
	inPadded := c.X >= -1 && c.X <= b.Columns && c.Y >= -1 && c.Y <= b.Rows
	return inPadded && !b.InBounds(c)
}

// InteriorCells is the size of a fresh free-cell pool for this board
func (b *Board) InteriorCells() int {
	return max(0, b.Columns-2) * max(0, b.Rows-2)
}
