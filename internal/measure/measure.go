// Package measure derives viewport and content widths from the terminal
// size and the rendered panel strip.
package measure

import (
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/domain"
)

// Adapter keeps the latest widths and reports when they change
type Adapter struct {
	frame    int
	terminal int
	viewport int
	content  int
	changed  bool
}

// NewAdapter creates an adapter; frame is the horizontal space the
// container's border and padding take from the terminal width.
func NewAdapter(frame int) *Adapter {
	if frame < 0 {
		frame = 0
	}
	return &Adapter{frame: frame}
}

// FromWindow records a new terminal width
func (a *Adapter) FromWindow(width int) {
	viewport := width - a.frame
	if viewport < 0 {
		viewport = 0
	}
	a.changed = width != a.terminal || viewport != a.viewport
	a.terminal = width
	a.viewport = viewport
}

// Content records the rendered strip and measures its widest line
func (a *Adapter) Content(strip string) {
	width := StripWidth(strip)
	a.changed = width != a.content
	a.content = width
}

// Changed reports whether the last update altered a width
func (a *Adapter) Changed() bool {
	return a.changed
}

// ViewportWidth returns the visible width in columns
func (a *Adapter) ViewportWidth() int {
	return a.viewport
}

// ContentWidth returns the strip width in columns
func (a *Adapter) ContentWidth() int {
	return a.content
}

// Measurement returns the current widths for the pagination engine
func (a *Adapter) Measurement() domain.Measurement {
	return domain.Measurement{
		ViewportWidth: float64(a.viewport),
		ContentWidth:  float64(a.content),
	}
}

// StripWidth is the cell width of the widest line of s
func StripWidth(s string) int {
	return lipgloss.Width(s)
}
