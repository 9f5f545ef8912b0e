package ecs

import "sort"

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
	// IDs keep increasing across Reset so stale handles never alias new entities
	lastID EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	w := &World{eventManager: NewEventManager()}
	w.clear()
	return w
}

func (w *World) clear() {
	w.entities = make(map[EntityID]*Entity)
	w.components = make(map[EntityID]ComponentMap)
	w.entityTags = make(map[string]map[EntityID]bool)
}

// Reset drops every entity and component. Event subscriptions survive.
func (w *World) Reset() {
	w.clear()
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.lastID++
	entity := newEntity(w.lastID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	componentMap, exists := w.components[entityID]
	if !exists {
		return
	}
	componentMap[componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.GetComponent(entityID, componentID)
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, oldest first
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortEntities(entities)
	return entities
}

// GetEntitiesWithComponent returns all entities that have a specific component, oldest first
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			entities = append(entities, w.entities[id])
		}
	}
	sortEntities(entities)
	return entities
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// Get fetches a component and asserts it to T in one step
func Get[T Component](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	comp, exists := w.GetComponent(entityID, componentID)
	if !exists {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

func sortEntities(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
}
