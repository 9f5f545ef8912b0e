package spawners

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/generation"
)

// EntitySpawner manages the creation of game entities. It implements generation.Spawner.
type EntitySpawner struct {
	world    *ecs.World
	catalog  *data.TileCatalog
	registry *components.EnemyRegistry
	player   config.PlayerConfig
	// moveDuration is copied onto every agent's MotionComponent
	moveDuration float64
	// target is the entity new enemies chase
	target ecs.EntityID
	log    logrus.FieldLogger
}

// NewEntitySpawner creates a new entity spawner. Enemies it creates are appended to registry.
func NewEntitySpawner(
	world *ecs.World,
	catalog *data.TileCatalog,
	registry *components.EnemyRegistry,
	cfg config.GameConfig,
	log logrus.FieldLogger,
) *EntitySpawner {
	return &EntitySpawner{
		world:        world,
		catalog:      catalog,
		registry:     registry,
		player:       cfg.Player,
		moveDuration: cfg.Timing.MoveDuration,
		log:          log,
	}
}

// SetTarget sets the entity that enemies spawned from now on will chase
func (s *EntitySpawner) SetTarget(id ecs.EntityID) {
	s.target = id
}

// Spawn creates the entity for a catalog kind at a cell
func (s *EntitySpawner) Spawn(kind string, cell generation.Cell) (ecs.EntityID, error) {
	template, err := s.catalog.Get(kind)
	if err != nil {
		return ecs.NoEntity, err
	}

	switch template.Category {
	case data.CategoryFloor:
		return s.createTile(template, cell, components.TagFloor, false).ID, nil
	case data.CategoryOuterWall:
		return s.createTile(template, cell, components.TagOuterWall, true).ID, nil
	case data.CategoryWall:
		return s.CreateWall(template, cell).ID, nil
	case data.CategoryFood:
		return s.CreatePickup(template, cell).ID, nil
	case data.CategoryEnemy:
		return s.CreateEnemy(template, cell)
	case data.CategoryExit:
		exit := s.createTile(template, cell, components.TagExit, false)
		s.world.AddComponent(exit.ID, components.Exit, &components.ExitComponent{})
		return exit.ID, nil
	}
	return ecs.NoEntity, fmt.Errorf("tile %q of category %q cannot be spawned on the board", kind, template.Category)
}

// createTile creates a positioned entity carrying its tile kind
func (s *EntitySpawner) createTile(template *data.TileTemplate, cell generation.Cell, tag string, blocks bool) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, tag)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: cell.X, Y: cell.Y})
	s.world.AddComponent(entity.ID, components.Tile, &components.TileComponent{Kind: template.ID})
	if blocks {
		s.world.AddComponent(entity.ID, components.Collision, &components.CollisionComponent{Blocks: true})
	}
	return entity
}

// CreateWall creates an inner wall the player can chop down
func (s *EntitySpawner) CreateWall(template *data.TileTemplate, cell generation.Cell) *ecs.Entity {
	wall := s.createTile(template, cell, components.TagWall, true)
	s.world.AddComponent(wall.ID, components.Wall, &components.WallComponent{HP: template.HP})
	return wall
}

// CreatePickup creates a food or soda item
func (s *EntitySpawner) CreatePickup(template *data.TileTemplate, cell generation.Cell) *ecs.Entity {
	pickup := s.createTile(template, cell, components.TagPickup, false)
	s.world.AddComponent(pickup.ID, components.Pickup, &components.PickupComponent{
		Kind: components.PickupKind(template.Pickup),
	})
	return pickup
}

// CreateEnemy creates an enemy and registers it in spawn order
func (s *EntitySpawner) CreateEnemy(template *data.TileTemplate, cell generation.Cell) (ecs.EntityID, error) {
	enemy := s.createTile(template, cell, components.TagEnemy, true)

	s.world.AddComponent(enemy.ID, components.Motion, &components.MotionComponent{
		MoveDuration: s.moveDuration,
		Alive:        true,
	})
	s.world.AddComponent(enemy.ID, components.Enemy, &components.EnemyComponent{
		AttackDamage: template.AttackDamage,
		Target:       s.target,
	})

	if err := s.registry.Register(enemy.ID); err != nil {
		s.world.RemoveEntity(enemy.ID)
		return ecs.NoEntity, err
	}

	s.log.WithFields(logrus.Fields{"entity": enemy.ID, "kind": template.ID, "x": cell.X, "y": cell.Y}).
		Debug("enemy spawned")
	return enemy.ID, nil
}

// CreatePlayer creates the player entity carrying the given food
func (s *EntitySpawner) CreatePlayer(cell generation.Cell, food int) (ecs.EntityID, error) {
	kinds := s.catalog.Kinds(data.CategoryPlayer)
	if len(kinds) == 0 {
		return ecs.NoEntity, fmt.Errorf("player: %w", data.ErrUnknownTile)
	}
	template, err := s.catalog.Get(kinds[0])
	if err != nil {
		return ecs.NoEntity, err
	}

	player := s.createTile(template, cell, components.TagPlayer, true)
	s.world.AddComponent(player.ID, components.Motion, &components.MotionComponent{
		MoveDuration: s.moveDuration,
		Alive:        true,
	})
	s.world.AddComponent(player.ID, components.Player, &components.PlayerComponent{
		Food:          food,
		WallDamage:    s.player.WallDamage,
		PointsPerFood: s.player.PointsPerFood,
		PointsPerSoda: s.player.PointsPerSoda,
	})

	s.log.WithFields(logrus.Fields{"entity": player.ID, "food": food, "x": cell.X, "y": cell.Y}).
		Debug("player spawned")
	return player.ID, nil
}
