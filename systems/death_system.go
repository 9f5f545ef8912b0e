package systems

import (
	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
)

// playerOf returns the player component of the current level, if there is one
func playerOf(world *ecs.World, state *components.GameState) (*components.PlayerComponent, bool) {
	return ecs.Get[*components.PlayerComponent](world, state.PlayerID, components.Player)
}

// setFood updates the player and mirrors the value into the game state
func setFood(state *components.GameState, player *components.PlayerComponent, food int) {
	player.Food = food
	state.Food = food
}

// starved reports whether the player has run out of food
func starved(player *components.PlayerComponent) bool {
	return player.Food <= 0
}
