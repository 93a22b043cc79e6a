package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged     EventType = "PageChanged"
	EventPagesRecomputed EventType = "PagesRecomputed"
	EventSwiped          EventType = "Swiped"
	EventItemsChanged    EventType = "ItemsChanged"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted when a navigation call moves the current page
type PageChangedEvent struct {
	Old PageState
	New PageState
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// PagesRecomputedEvent is emitted when a measurement changes the page count
type PagesRecomputedEvent struct {
	Measurement Measurement
	OldTotal    int
	NewTotal    int
	CurrentPage int
}

func (e PagesRecomputedEvent) Type() EventType { return EventPagesRecomputed }

// SwipedEvent is emitted for every classified gesture the engine consumes
type SwipedEvent struct {
	Direction SwipeDirection
}

func (e SwipedEvent) Type() EventType { return EventSwiped }

// ItemsChangedEvent is emitted when the content source replaces its items
type ItemsChangedEvent struct {
	Count int
}

func (e ItemsChangedEvent) Type() EventType { return EventItemsChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
