package components

import (
	"ebiten-scavenger/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Tile
	Collision
	Motion
	Player
	Enemy
	Wall
	Pickup
	Exit
)

// Entity tags
const (
	TagPlayer    = "player"
	TagEnemy     = "enemy"
	TagWall      = "wall"
	TagOuterWall = "outer_wall"
	TagFloor     = "floor"
	TagPickup    = "pickup"
	TagExit      = "exit"
)
