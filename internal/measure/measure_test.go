package measure

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"carousel/internal/domain"
)

func TestFromWindowSubtractsFrame(t *testing.T) {
	a := NewAdapter(4)
	a.FromWindow(84)
	assert.True(t, a.Changed())
	assert.Equal(t, 80, a.ViewportWidth())

	a.FromWindow(84)
	assert.False(t, a.Changed(), "same width is not a change")

	a.FromWindow(2)
	assert.Equal(t, 0, a.ViewportWidth(), "never negative")
}

func TestStripWidthIgnoresStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Render("hello")
	assert.Equal(t, 5, StripWidth(styled))
	assert.Equal(t, 0, StripWidth(""))
	assert.Equal(t, 7, StripWidth(strings.Join([]string{"abc", "abcdefg", "ab"}, "\n")))
	assert.Equal(t, 4, StripWidth("日本"), "wide runes count two cells")
}

func TestMeasurement(t *testing.T) {
	a := NewAdapter(0)
	a.FromWindow(30)
	a.Content(strings.Repeat("x", 100))
	assert.True(t, a.Changed())
	assert.Equal(t, domain.Measurement{ViewportWidth: 30, ContentWidth: 100}, a.Measurement())

	pages, ok := a.Measurement().Pages()
	assert.True(t, ok)
	assert.Equal(t, 4, pages)

	a.Content(strings.Repeat("y", 100))
	assert.False(t, a.Changed())
}

func TestNegativeFrame(t *testing.T) {
	a := NewAdapter(-3)
	a.FromWindow(10)
	assert.Equal(t, 10, a.ViewportWidth())
}
