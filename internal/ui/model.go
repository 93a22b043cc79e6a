package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"carousel/internal/config"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/gesture"
	"carousel/internal/measure"
	"carousel/internal/pagination"
	"carousel/internal/ui/views"
)

// Options configures a carousel Model
type Options struct {
	Config *config.Config
	Items  []domain.Item
	// Footer, when set, is rendered under the track with the current
	// navigation handle.
	Footer    func(pagination.Handle) string
	StartPage int
	Bus       eventbus.EventBus
	Logger    *zap.Logger
}

// Model is the Bubble Tea model laying out the carousel
type Model struct {
	engine   *pagination.Engine
	scope    *pagination.Scope
	gestures *gesture.Recognizer
	measure  *measure.Adapter
	bus      eventbus.EventBus
	logger   *zap.Logger

	styles *views.Styles
	track  *views.TrackRenderer
	keys   keyMap
	help   help.Model

	items     []domain.Item
	strip     string
	footer    func(pagination.Handle) string
	mouse     bool
	startPage int
	started   bool

	width  int
	status string

	helpOps       *HelpOps
	unsubscribers []func()
}

// New creates the carousel model. The returned model is also the
// imperative handle holder: see Handle and Scope.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid carousel config: %w", err)
	}
	policy, _ := cfg.ClampPolicy()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bus := opts.Bus
	if bus == nil {
		bus = eventbus.New(logger)
	}

	engine := pagination.NewEngine(
		pagination.WithClampPolicy(policy),
		pagination.WithBus(bus),
		pagination.WithLogger(logger),
	)

	styles := views.NewStyles(cfg.ClassPrefix, cfg.Styles)
	panels := views.NewPanelRenderer(styles, cfg.PanelWidth, cfg.PanelHeight)
	keys := defaultKeyMap()

	m := &Model{
		engine:    engine,
		scope:     pagination.NewScope(engine),
		gestures:  gesture.NewRecognizer(cfg.SwipeThreshold),
		measure:   measure.NewAdapter(styles.Container.GetHorizontalFrameSize()),
		bus:       bus,
		logger:    logger.Named("ui"),
		styles:    styles,
		track:     views.NewTrackRenderer(styles, panels),
		keys:      keys,
		help:      help.New(),
		footer:    opts.Footer,
		mouse:     cfg.Mouse,
		startPage: opts.StartPage,
		helpOps:   NewHelpOps(),
	}

	m.unsubscribers = append(m.unsubscribers,
		engine.Subscribe(func(_, next domain.PageState) {
			m.status = fmt.Sprintf("page %d of %d", next.CurrentPage+1, next.TotalPages)
		}),
		bus.Subscribe(eventbus.EventSwiped, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SwipedEvent); ok {
				m.logger.Debug("swipe", zap.Stringer("direction", ev.Direction))
			}
		}),
		bus.Subscribe(eventbus.EventPagesRecomputed, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.PagesRecomputedEvent); ok {
				m.onRecomputed(ev)
			}
		}),
	)

	m.setItems(opts.Items)
	return m, nil
}

// Handle returns the navigation handle of this carousel. Its operations
// update view state and must run on the Bubble Tea goroutine; other
// goroutines navigate with Program.Send(GoToPageMsg{...}).
func (m *Model) Handle() pagination.Handle {
	return m.engine.Handle()
}

// Scope returns the scope descendant content resolves the handle from
func (m *Model) Scope() *pagination.Scope {
	return m.scope
}

// Items returns the current item list
func (m *Model) Items() []domain.Item {
	return m.items
}

// Status returns the last status line
func (m *Model) Status() string {
	return m.status
}

// Engine returns the pagination engine backing this carousel
func (m *Model) Engine() *pagination.Engine {
	return m.engine
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Close detaches the model from the event bus
func (m *Model) Close() {
	for _, unsub := range m.unsubscribers {
		unsub()
	}
	m.unsubscribers = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.mouse {
		return tea.EnableMouseCellMotion
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// A drag's origin column means nothing after a resize
		m.gestures.Reset()
		m.measure.FromWindow(msg.Width)
		if m.measure.Changed() {
			m.engine.Measure(m.measure.Measurement())
		}

	case SetItemsMsg:
		m.setItems(msg.Items)

	case GoToPageMsg:
		m.engine.GoToPage(msg.Page)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		if dir, ok := m.gestures.Classify(msg); ok {
			m.engine.Swipe(dir)
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.status = fmt.Sprintf("help pager: %v", msg.err)
			m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.engine.NextPage()
	case key.Matches(msg, m.keys.Prev):
		m.engine.PrevPage()
	case key.Matches(msg, m.keys.First):
		m.engine.FirstPage()
	case key.Matches(msg, m.keys.Last):
		m.engine.LastPage()
	case key.Matches(msg, m.keys.GoTo):
		// Keys are 1-based, pages are 0-based
		m.engine.GoToPage(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Pager):
		content := NewHelpRenderer(m.keys).RenderHelpContent(m.styles.Prefix)
		return m.helpOps.pagerCmd(content)
	}
	return nil
}

// setItems re-renders the strip and feeds the new item count to the engine
func (m *Model) setItems(list []domain.Item) {
	m.items = list
	m.strip = m.track.Strip(list)
	m.measure.Content(m.strip)
	m.engine.SetItemCount(len(list), m.measure.Measurement())
	m.bus.Publish(eventbus.ItemsChangedEvent{Count: len(list)})
}

func (m *Model) onRecomputed(ev eventbus.PagesRecomputedEvent) {
	m.status = fmt.Sprintf("%d pages", ev.NewTotal)
	if !m.started && ev.NewTotal > 0 {
		m.started = true
		m.engine.GoToPage(m.startPage)
	}
}

// View renders the carousel
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	h := m.engine.Handle()
	viewport := m.measure.ViewportWidth()
	window := m.track.Window(m.strip, m.engine.OffsetColumns(viewport), viewport)

	var b strings.Builder
	b.WriteString(m.styles.Container.Render(window))
	b.WriteString("\n")
	b.WriteString(m.renderIndicator())
	b.WriteString("\n")

	if m.footer != nil {
		b.WriteString(m.footer(h))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderIndicator resolves the handle through the scope like any other
// descendant content would
func (m *Model) renderIndicator() string {
	h, err := m.scope.Handle()
	if err != nil {
		return m.styles.Dim.Render(err.Error())
	}
	return views.RenderIndicator(m.styles, h)
}
