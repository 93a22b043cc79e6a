package views

import (
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/config"
)

// Styling hook slots. Each is addressed as "<prefix>-<slot>" in config.
const (
	SlotContainer = "container"
	SlotTrack     = "track"
	SlotItem      = "item"
	SlotTitle     = "title"
	SlotIndicator = "indicator"
	SlotStatus    = "status"
)

// Styles contains all the style definitions for the carousel
type Styles struct {
	Prefix string

	Container       lipgloss.Style
	Track           lipgloss.Style
	Item            lipgloss.Style
	Title           lipgloss.Style
	Indicator       lipgloss.Style
	IndicatorActive lipgloss.Style
	Status          lipgloss.Style
	Dim             lipgloss.Style
	Help            lipgloss.Style
}

// NewStyles creates the default styles and applies per-hook overrides
func NewStyles(prefix string, overrides map[string]config.StyleSpec) *Styles {
	if prefix == "" {
		prefix = "carousel"
	}
	s := &Styles{
		Prefix: prefix,
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Track: lipgloss.NewStyle(),
		Item: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Indicator:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		IndicatorActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:             lipgloss.NewStyle().Faint(true),
		Help:            lipgloss.NewStyle().Faint(true),
	}

	for slot, target := range map[string]*lipgloss.Style{
		SlotContainer: &s.Container,
		SlotTrack:     &s.Track,
		SlotItem:      &s.Item,
		SlotTitle:     &s.Title,
		SlotIndicator: &s.IndicatorActive,
		SlotStatus:    &s.Status,
	} {
		if spec, ok := overrides[s.Hook(slot)]; ok {
			*target = apply(*target, spec)
		}
	}
	return s
}

// Hook returns the styling hook name for a slot
func (s *Styles) Hook(slot string) string {
	return s.Prefix + "-" + slot
}

func apply(st lipgloss.Style, spec config.StyleSpec) lipgloss.Style {
	if spec.Foreground != "" {
		st = st.Foreground(lipgloss.Color(spec.Foreground))
	}
	if spec.Background != "" {
		st = st.Background(lipgloss.Color(spec.Background))
	}
	if spec.BorderColor != "" {
		st = st.BorderForeground(lipgloss.Color(spec.BorderColor))
	}
	if spec.Bold {
		st = st.Bold(true)
	}
	return st
}
