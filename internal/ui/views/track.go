package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"carousel/internal/domain"
)

// TrackRenderer lays panels out end to end and cuts the visible window
type TrackRenderer struct {
	styles *Styles
	panels *PanelRenderer
}

// NewTrackRenderer creates a track renderer
func NewTrackRenderer(styles *Styles, panels *PanelRenderer) *TrackRenderer {
	return &TrackRenderer{
		styles: styles,
		panels: panels,
	}
}

// Strip renders every item side by side on a single horizontal axis
func (t *TrackRenderer) Strip(items []domain.Item) string {
	if len(items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, t.panels.Render(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Window returns columns [offset, offset+width) of the strip. Every line
// is padded to width so the container keeps its size when the window runs
// past the end of the content.
func (t *TrackRenderer) Window(strip string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}

	blank := strings.Repeat(" ", width)
	if strip == "" {
		return t.styles.Track.Render(blank)
	}

	lines := strings.Split(strip, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		seg := ansi.Cut(line, offset, offset+width)
		if pad := width - ansi.StringWidth(seg); pad > 0 {
			seg += blank[:pad]
		}
		out[i] = t.styles.Track.Render(seg)
	}
	return strings.Join(out, "\n")
}
