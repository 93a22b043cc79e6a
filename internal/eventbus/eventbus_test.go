package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"carousel/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversSynchronously(t *testing.T) {
	b := New(nil)

	var got []domain.PageState
	b.Subscribe(EventPageChanged, func(e DomainEvent) {
		got = append(got, e.(PageChangedEvent).New)
	})

	b.Publish(PageChangedEvent{New: domain.PageState{CurrentPage: 1, TotalPages: 3}})
	b.Publish(PageChangedEvent{New: domain.PageState{CurrentPage: 2, TotalPages: 3}})

	// No waiting: handlers have run by the time Publish returns
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].CurrentPage)
	assert.Equal(t, 2, got[1].CurrentPage)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	b := New(nil)

	calls := 0
	b.Subscribe(EventSwiped, func(DomainEvent) { calls++ })

	b.Publish(PageChangedEvent{})
	assert.Equal(t, 0, calls)

	b.Publish(SwipedEvent{Direction: domain.SwipeLeft})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New(nil)

	var order []string
	unsubA := b.Subscribe(EventItemsChanged, func(DomainEvent) { order = append(order, "a") })
	b.Subscribe(EventItemsChanged, func(DomainEvent) { order = append(order, "b") })

	b.Publish(ItemsChangedEvent{Count: 1})
	require.Equal(t, []string{"a", "b"}, order)

	unsubA()
	unsubA() // second call is a no-op

	order = nil
	b.Publish(ItemsChangedEvent{Count: 2})
	require.Equal(t, []string{"b"}, order)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New(nil)

	reached := false
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { reached = true })

	require.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "x"})
	})
	assert.True(t, reached)
}

func TestHandlerMaySubscribeDuringPublish(t *testing.T) {
	b := New(nil)

	late := 0
	b.Subscribe(EventPageChanged, func(DomainEvent) {
		b.Subscribe(EventPageChanged, func(DomainEvent) { late++ })
	})

	b.Publish(PageChangedEvent{})
	assert.Equal(t, 0, late, "handler added during publish must not see the same event")

	b.Publish(PageChangedEvent{})
	assert.Equal(t, 1, late)
}

func TestSetLoggerReceivesHandlerPanics(t *testing.T) {
	b := New(nil)
	core, logs := observer.New(zap.ErrorLevel)
	b.SetLogger(zap.New(core))

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Publish(ErrorEvent{Message: "x"})

	entries := logs.FilterMessage("event handler panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "eventbus", entries[0].LoggerName)
}
