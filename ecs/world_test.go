package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct{ n int }

func (testEvent) Type() EventType { return "test" }

type position struct{ X, Y int }

const positionID ComponentID = 1

func TestWorldEntityLifecycle(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	require.NotEqual(t, NoEntity, a.ID)
	assert.Greater(t, b.ID, a.ID)

	w.AddComponent(a.ID, positionID, &position{X: 1, Y: 2})
	pos, ok := Get[*position](w, a.ID, positionID)
	require.True(t, ok)
	assert.Equal(t, 2, pos.Y)

	_, ok = Get[*position](w, b.ID, positionID)
	assert.False(t, ok)

	w.RemoveEntity(a.ID)
	assert.Nil(t, w.GetEntity(a.ID))
	assert.False(t, w.HasComponent(a.ID, positionID))
	assert.Equal(t, 1, w.EntityCount())
}

func TestWorldAddComponentToUnknownEntityIsIgnored(t *testing.T) {
	w := NewWorld()
	w.AddComponent(42, positionID, &position{})
	assert.False(t, w.HasComponent(42, positionID))
}

func TestWorldTagsAreOrderedByCreation(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		w.TagEntity(e.ID, "enemy")
		ids = append(ids, e.ID)
	}

	tagged := w.GetEntitiesWithTag("enemy")
	require.Len(t, tagged, 10)
	for i, e := range tagged {
		assert.Equal(t, ids[i], e.ID)
		assert.True(t, e.HasTag("enemy"))
	}

	w.RemoveEntity(ids[3])
	assert.Len(t, w.GetEntitiesWithTag("enemy"), 9)
}

func TestWorldResetKeepsIDsMonotonicAndSubscriptions(t *testing.T) {
	w := NewWorld()
	seen := 0
	w.GetEventManager().Subscribe("test", func(e Event) { seen += e.(testEvent).n })

	before := w.CreateEntity()
	w.TagEntity(before.ID, "player")
	w.Reset()

	assert.Equal(t, 0, w.EntityCount())
	assert.Empty(t, w.GetEntitiesWithTag("player"))

	after := w.CreateEntity()
	assert.Greater(t, after.ID, before.ID)

	w.EmitEvent(testEvent{n: 3})
	assert.Equal(t, 3, seen)
}

func TestEventManagerDispatchOrder(t *testing.T) {
	em := NewEventManager()
	var order []string
	em.Subscribe("test", func(Event) { order = append(order, "first") })
	em.SubscribeAll(func(Event) { order = append(order, "second") }, "test", "other")

	em.Emit(testEvent{})
	assert.Equal(t, []string{"first", "second"}, order)
}
