package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carousel/internal/domain"
)

// PanelRenderer renders a single item at a fixed outer size
type PanelRenderer struct {
	styles *Styles
	width  int
	height int
}

// NewPanelRenderer creates a panel renderer. height 0 lets the panel
// grow to fit its content.
func NewPanelRenderer(styles *Styles, width, height int) *PanelRenderer {
	return &PanelRenderer{
		styles: styles,
		width:  width,
		height: height,
	}
}

// Width returns the outer panel width in columns
func (r *PanelRenderer) Width() int {
	return r.width
}

// Render draws the item's title and body inside the item frame
func (r *PanelRenderer) Render(item domain.Item) string {
	frame := r.styles.Item
	inner := r.width - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	content := r.styles.Title.Render(item.Title)
	if item.Body != "" {
		content += "\n" + item.Body
	}
	body := lipgloss.NewStyle().Width(inner).Render(content)

	if r.height > 0 {
		rows := r.height - frame.GetVerticalFrameSize()
		if rows < 1 {
			rows = 1
		}
		lines := strings.Split(body, "\n")
		if len(lines) > rows {
			lines = lines[:rows]
		}
		for len(lines) < rows {
			lines = append(lines, strings.Repeat(" ", inner))
		}
		body = strings.Join(lines, "\n")
	}

	return frame.Width(inner + frame.GetHorizontalPadding()).Render(body)
}
