package generation

import (
	"ebiten-scavenger/ecs"
)

// Spawner materializes a tile, object or agent of the given kind at a cell.
// The generator treats the returned handle as opaque.
type Spawner interface {
	Spawn(kind string, cell Cell) (ecs.EntityID, error)
}
