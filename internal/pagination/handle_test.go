package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/domain"
)

func TestHandleReflectsState(t *testing.T) {
	e := measured(t, 300, 1000)

	h := e.Handle()
	assert.Equal(t, 0, h.CurrentPage)
	assert.Equal(t, 4, h.TotalPages)
	assert.False(t, h.HasPrev())
	assert.True(t, h.HasNext())

	h.NextPage()
	h.NextPage()
	h.GoToPage(99)

	h = e.Handle()
	assert.Equal(t, 3, h.CurrentPage)
	assert.True(t, h.HasPrev())
	assert.False(t, h.HasNext())

	h.PrevPage()
	assert.Equal(t, 2, e.State().CurrentPage)
}

func TestHandleOperationsStableUntilTotalChanges(t *testing.T) {
	e := measured(t, 100, 500)

	first := e.Handle()
	first.NextPage()
	second := e.Handle()
	require.NotEqual(t, first.CurrentPage, second.CurrentPage)
	assert.Same(t, first.Operations, second.Operations, "page moves must not churn operations")

	// Same total from a different measurement keeps them too
	e.Measure(domain.Measurement{ViewportWidth: 50, ContentWidth: 250})
	assert.Same(t, first.Operations, e.Handle().Operations)

	e.Measure(domain.Measurement{ViewportWidth: 100, ContentWidth: 800})
	third := e.Handle()
	assert.NotSame(t, first.Operations, third.Operations)
	assert.Equal(t, 8, third.TotalPages)
}

func TestScopeResolvesBoundEngine(t *testing.T) {
	e := measured(t, 100, 300)
	s := NewScope(e)

	h, err := s.Handle()
	require.NoError(t, err)
	assert.Equal(t, 3, h.TotalPages)

	h.NextPage()
	again := s.MustHandle()
	assert.Equal(t, 1, again.CurrentPage)

	got, err := s.Engine()
	require.NoError(t, err)
	assert.Same(t, e, got)
}

func TestScopeOutsideProvider(t *testing.T) {
	var nilScope *Scope
	_, err := nilScope.Handle()
	require.ErrorIs(t, err, ErrOutsideProvider)

	_, err = (&Scope{}).Handle()
	require.ErrorIs(t, err, ErrOutsideProvider)

	assert.PanicsWithError(t, ErrOutsideProvider.Error(), func() {
		NewScope(nil).MustHandle()
	})
}
