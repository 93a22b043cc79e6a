package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"carousel/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageChanged     = domain.EventPageChanged
	EventPagesRecomputed = domain.EventPagesRecomputed
	EventSwiped          = domain.EventSwiped
	EventItemsChanged    = domain.EventItemsChanged
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventError           = domain.EventError
)

// Re-export domain event types
type PageChangedEvent = domain.PageChangedEvent
type PagesRecomputedEvent = domain.PagesRecomputedEvent
type SwipedEvent = domain.SwipedEvent
type ItemsChangedEvent = domain.ItemsChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus delivers events synchronously on the publisher's goroutine.
// Handlers run in subscription order and finish before Publish returns.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	logger   *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger.Named("eventbus"),
	}
}

// Publish publishes an event to all subscribers
func (b *Bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers may subscribe or unsubscribe while we iterate
	handlers := make([]subscription, len(subs))
	copy(handlers, subs)
	logger := b.logger
	b.mu.RUnlock()

	logger.Debug("publish", zap.String("event", string(event.Type())), zap.Int("handlers", len(handlers)))

	for _, sub := range handlers {
		deliver(logger, sub.handler, event)
	}
}

// SetLogger replaces the logger, for buses created before logging is set up
func (b *Bus) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = logger.Named("eventbus")
}

func deliver(logger *zap.Logger, h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panic",
				zap.String("event", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}
