// Package pagination owns the carousel's page state: it derives the page
// count from layout measurements, clamps navigation, and maps swipe gestures
// to navigation calls.
package pagination

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"carousel/internal/domain"
	"carousel/internal/eventbus"
)

// ClampPolicy decides what a recomputation does to an out-of-range page
type ClampPolicy int

const (
	// ClampLazy leaves CurrentPage alone on recompute; the next navigation
	// call snaps it back into range.
	ClampLazy ClampPolicy = iota
	// ClampEager re-clamps CurrentPage on every recompute.
	ClampEager
)

func (p ClampPolicy) String() string {
	if p == ClampEager {
		return "eager"
	}
	return "lazy"
}

// ParseClampPolicy converts a config value into a ClampPolicy
func ParseClampPolicy(s string) (ClampPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lazy":
		return ClampLazy, nil
	case "eager":
		return ClampEager, nil
	default:
		return ClampLazy, fmt.Errorf("unknown clamp policy %q", s)
	}
}

// Engine is the pagination state machine for one carousel instance.
// All mutation goes through its methods; notifications are published
// after the lock is released so handlers may read the engine.
type Engine struct {
	mu     sync.Mutex
	state  domain.PageState
	items  int
	policy ClampPolicy
	ops    *Operations

	bus    eventbus.EventBus
	logger *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClampPolicy sets the recompute clamp policy
func WithClampPolicy(p ClampPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithBus publishes state changes to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine at page 0 of 0. Without WithBus the engine
// gets a private bus so Subscribe still works.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = eventbus.New(e.logger)
	}
	e.logger = e.logger.Named("pagination")
	return e
}

// State returns a copy of the current page state
func (e *Engine) State() domain.PageState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Policy returns the configured clamp policy
func (e *Engine) Policy() ClampPolicy {
	return e.policy
}

// Subscribe registers fn for page changes. Returns an unsubscribe function.
func (e *Engine) Subscribe(fn func(prev, next domain.PageState)) func() {
	return e.bus.Subscribe(eventbus.EventPageChanged, func(ev eventbus.DomainEvent) {
		if pc, ok := ev.(eventbus.PageChangedEvent); ok {
			fn(pc.Old, pc.New)
		}
	})
}

// Measure recomputes TotalPages from a layout measurement. A zero-width
// viewport is not measurable yet and leaves the state untouched.
func (e *Engine) Measure(m domain.Measurement) {
	e.mu.Lock()
	ev, ok := e.recompute(m)
	e.mu.Unlock()

	if ok {
		e.bus.Publish(ev)
	}
}

// SetItemCount records a change in the number of panels and recomputes
// from m, the layout as measured after the change. A zero-width viewport
// leaves TotalPages alone just as Measure does.
func (e *Engine) SetItemCount(count int, m domain.Measurement) {
	e.mu.Lock()
	e.items = count
	ev, ok := e.recompute(m)
	e.mu.Unlock()

	if ok {
		e.bus.Publish(ev)
	}
}

// ItemCount returns the last count passed to SetItemCount
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items
}

// recompute must be called with e.mu held
func (e *Engine) recompute(m domain.Measurement) (eventbus.PagesRecomputedEvent, bool) {
	total, ok := m.Pages()
	if !ok {
		e.logger.Debug("skipping recompute, viewport not measurable",
			zap.Float64("viewport", m.ViewportWidth))
		return eventbus.PagesRecomputedEvent{}, false
	}

	old := e.state
	e.state.TotalPages = total
	if e.policy == ClampEager {
		e.state.CurrentPage = e.clamp(e.state.CurrentPage)
	}
	if old == e.state {
		return eventbus.PagesRecomputedEvent{}, false
	}

	e.logger.Debug("pages recomputed",
		zap.Float64("viewport", m.ViewportWidth),
		zap.Float64("content", m.ContentWidth),
		zap.Int("old_total", old.TotalPages),
		zap.Int("new_total", total),
		zap.Int("current", e.state.CurrentPage))

	return eventbus.PagesRecomputedEvent{
		Measurement: m,
		OldTotal:    old.TotalPages,
		NewTotal:    total,
		CurrentPage: e.state.CurrentPage,
	}, true
}

// clamp constrains page into [0, max(0, TotalPages-1)]
func (e *Engine) clamp(page int) int {
	last := e.state.TotalPages - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// navigate applies step to the current page, clamps, and notifies on change
func (e *Engine) navigate(step func(current int) int) {
	e.mu.Lock()
	old := e.state
	e.state.CurrentPage = e.clamp(step(old.CurrentPage))
	changed := old != e.state
	newState := e.state
	e.mu.Unlock()

	if !changed {
		return
	}
	e.logger.Debug("page changed",
		zap.Int("from", old.CurrentPage),
		zap.Int("to", newState.CurrentPage),
		zap.Int("total", newState.TotalPages))
	e.bus.Publish(eventbus.PageChangedEvent{Old: old, New: newState})
}

// PrevPage moves one page back; no-op on the first page
func (e *Engine) PrevPage() {
	e.navigate(func(cur int) int { return cur - 1 })
}

// NextPage moves one page forward; no-op on the last page or with no pages
func (e *Engine) NextPage() {
	e.navigate(func(cur int) int { return cur + 1 })
}

// GoToPage jumps to target, silently clamped into range
func (e *Engine) GoToPage(target int) {
	e.navigate(func(int) int { return target })
}

// FirstPage jumps to page 0
func (e *Engine) FirstPage() {
	e.GoToPage(0)
}

// LastPage jumps to the last page
func (e *Engine) LastPage() {
	e.navigate(func(int) int { return e.state.TotalPages - 1 })
}

// Swipe maps a classified gesture onto navigation: Left advances, Right
// goes back, anything else is ignored. Reports whether a navigation call
// was made.
func (e *Engine) Swipe(dir domain.SwipeDirection) bool {
	switch dir {
	case domain.SwipeLeft:
		e.bus.Publish(eventbus.SwipedEvent{Direction: dir})
		e.NextPage()
		return true
	case domain.SwipeRight:
		e.bus.Publish(eventbus.SwipedEvent{Direction: dir})
		e.PrevPage()
		return true
	default:
		return false
	}
}

// OffsetPercent is the strip offset as a percentage of the viewport width
func (e *Engine) OffsetPercent() int {
	return e.State().CurrentPage * 100
}

// OffsetColumns is the strip offset in columns for a viewport of the given width
func (e *Engine) OffsetColumns(viewportWidth int) int {
	if viewportWidth <= 0 {
		return 0
	}
	return e.State().CurrentPage * viewportWidth
}
