package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches.
// Handlers run synchronously, in subscription order.
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// SubscribeAll registers one handler for several event types
func (em *EventManager) SubscribeAll(handler EventHandler, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		em.Subscribe(eventType, handler)
	}
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
