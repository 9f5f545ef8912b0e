package generation

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// FreeCellPool holds the interior cells that have not been given an object yet.
// Cells only ever leave the pool; a taken cell never comes back within a level.
type FreeCellPool struct {
	cells   []Cell
	members mapset.Set[Cell]
}

// NewFreeCellPool fills a pool with every cell of the board except a one-cell border,
// so nothing spawns next to the outer wall ring, the player start or the exit.
func NewFreeCellPool(board *Board) *FreeCellPool {
	p := &FreeCellPool{
		cells:   make([]Cell, 0, board.InteriorCells()),
		members: mapset.New[Cell](),
	}
	for x := 1; x < board.Columns-1; x++ {
		for y := 1; y < board.Rows-1; y++ {
			p.add(Cell{X: x, Y: y})
		}
	}
	return p
}

func (p *FreeCellPool) add(c Cell) bool {
	if p.members.Has(c) {
		return false
	}
	p.members.Put(c)
	p.cells = append(p.cells, c)
	return true
}

// Len returns how many cells are still free
func (p *FreeCellPool) Len() int {
	return len(p.cells)
}

// Contains reports whether c is still free
func (p *FreeCellPool) Contains(c Cell) bool {
	return p.members.Has(c)
}

// Take removes and returns a uniformly random cell in O(1) by swapping it with the last one
func (p *FreeCellPool) Take(rng *rand.Rand) (Cell, bool) {
	n := len(p.cells)
	if n == 0 {
		return Cell{}, false
	}
	i := rng.Intn(n)
	c := p.cells[i]
	p.cells[i] = p.cells[n-1]
	p.cells = p.cells[:n-1]
	p.members.Remove(c)
	return c, true
}

// Cells returns a copy of the remaining cells
func (p *FreeCellPool) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}
