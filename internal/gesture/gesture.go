// Package gesture turns raw Bubble Tea mouse messages into classified
// swipe directions.
package gesture

import (
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/domain"
)

// DefaultThreshold is the minimum horizontal drag, in columns, for a swipe
const DefaultThreshold = 3

// Recognizer tracks one left-button drag at a time.
// A drag to the left is a Left swipe (content follows the pointer and
// the next page comes into view); a drag to the right is a Right swipe.
type Recognizer struct {
	threshold int
	pressed   bool
	originX   int
}

// NewRecognizer creates a recognizer; threshold <= 0 uses DefaultThreshold
func NewRecognizer(threshold int) *Recognizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Recognizer{threshold: threshold}
}

// Threshold returns the drag distance needed for a swipe
func (r *Recognizer) Threshold() int {
	return r.threshold
}

// Dragging reports whether a press is waiting for its release
func (r *Recognizer) Dragging() bool {
	return r.pressed
}

// Classify consumes one mouse message. ok is false while a drag is still
// in progress or when the message is not part of any gesture.
func (r *Recognizer) Classify(msg tea.MouseMsg) (dir domain.SwipeDirection, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			r.pressed = true
			r.originX = msg.X
			return domain.SwipeOther, false
		case tea.MouseButtonWheelRight:
			return domain.SwipeLeft, true
		case tea.MouseButtonWheelLeft:
			return domain.SwipeRight, true
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			return domain.SwipeOther, true
		}
		return domain.SwipeOther, false

	case tea.MouseActionRelease:
		if !r.pressed {
			return domain.SwipeOther, false
		}
		r.pressed = false
		return r.direction(msg.X - r.originX), true

	default:
		// Motion while pressed is part of the drag
		return domain.SwipeOther, false
	}
}

// Reset drops any drag in progress
func (r *Recognizer) Reset() {
	r.pressed = false
}

func (r *Recognizer) direction(dx int) domain.SwipeDirection {
	switch {
	case dx <= -r.threshold:
		return domain.SwipeLeft
	case dx >= r.threshold:
		return domain.SwipeRight
	default:
		return domain.SwipeOther
	}
}
