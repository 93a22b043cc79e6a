package domain

import "math"

// Item is one panel of carousel content
type Item struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// PageState is the pagination state owned by a single engine
type PageState struct {
	CurrentPage int
	TotalPages  int
}

// Measurement is a snapshot of the carousel's physical layout
type Measurement struct {
	ViewportWidth float64
	ContentWidth  float64
}

// Pages returns ceil(content / viewport), or false when the viewport
// has no width yet.
func (m Measurement) Pages() (int, bool) {
	if m.ViewportWidth <= 0 {
		return 0, false
	}
	content := m.ContentWidth
	if content < 0 {
		content = 0
	}
	return int(math.Ceil(content / m.ViewportWidth)), true
}

// SwipeDirection is the classified outcome of a gesture
type SwipeDirection int

const (
	SwipeOther SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "Left"
	case SwipeRight:
		return "Right"
	default:
		return "Other"
	}
}
