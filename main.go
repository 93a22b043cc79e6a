package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"carousel/internal/config"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/items"
	"carousel/internal/logging"
	"carousel/internal/pagination"
	"carousel/internal/ui"
)

var (
	configPath  string
	classPrefix string
	panelWidth  int
	clampPolicy string
	noMouse     bool
	logFile     string
	debug       bool
	startPage   int
	force       bool
)

var rootCmd = &cobra.Command{
	Use:   "carousel [file or directory...]",
	Short: "Page through text panels in a swipeable terminal carousel",
	Long: `carousel lays panels out side by side and shows one terminal width of
them at a time. Each file becomes a panel; directories contribute their files.
Without arguments the [[items]] from the config file are shown.

Navigate with ←/→, drag the mouse, or scroll horizontally.`,
	SilenceUsage: true,
	RunE:         run,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")

	rootCmd.Flags().StringVar(&classPrefix, "prefix", "", "styling hook prefix")
	rootCmd.Flags().IntVarP(&panelWidth, "panel-width", "w", 0, "columns per panel")
	rootCmd.Flags().StringVar(&clampPolicy, "clamp", "", `page clamping after a resize: "lazy" or "eager"`)
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse swipes")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path (empty string in config disables logging)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.Flags().IntVarP(&startPage, "page", "p", 1, "page to open on (1-based)")

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// The config names the log file, so the bus starts without a logger
	bus := eventbus.New(nil)
	var loadedFrom string
	unsubLoaded := bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			loadedFrom = ev.Path
		}
	})

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	unsubLoaded()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()
	bus.SetLogger(logger)
	logger.Info("config loaded", zap.String("path", loadedFrom))

	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageChangedEvent); ok {
			logger.Info("page changed",
				zap.Int("from", ev.Old.CurrentPage),
				zap.Int("to", ev.New.CurrentPage),
				zap.Int("total", ev.New.TotalPages))
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(ev.Message, zap.Error(ev.Err))
		}
	})

	list, err := items.Resolve(cfg.Items, args)
	if errors.Is(err, items.ErrNoItems) && len(args) == 0 {
		return fmt.Errorf("%w: pass files on the command line or add [[items]] to %s", err, configSvc.Path())
	}
	if err != nil {
		return err
	}
	logger.Info("starting carousel",
		zap.Int("items", len(list)),
		zap.String("config", configSvc.Path()),
		zap.String("clamp", cfg.Clamp))

	model, err := ui.New(ui.Options{
		Config:    cfg,
		Items:     list,
		Footer:    footerFor(list),
		StartPage: startPage - 1,
		Bus:       bus,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("carousel exited", zap.Int("page", model.Handle().CurrentPage))
	return nil
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.ClassPrefix = classPrefix
	}
	if flags.Changed("panel-width") {
		cfg.PanelWidth = panelWidth
	}
	if flags.Changed("clamp") {
		cfg.Clamp = clampPolicy
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !noMouse
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	bus := eventbus.New(nil)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", ev.Path)
		}
	})

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	if _, err := os.Stat(configSvc.Path()); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configSvc.Path())
	}

	cfg := config.DefaultConfig()
	cfg.Items = []domain.Item{
		{Title: "Welcome", Body: "Use ← and → to move between pages."},
		{Title: "Swipe", Body: "Drag with the mouse or scroll sideways."},
		{Title: "Jump", Body: "Press 1-9 to go straight to a page."},
		{Title: "Config", Body: "Edit this file to add your own panels."},
	}
	return configSvc.Save(cfg)
}

// footerFor renders the title range of the page under the viewport
func footerFor(list []domain.Item) func(pagination.Handle) string {
	return func(h pagination.Handle) string {
		if h.TotalPages == 0 || len(list) == 0 {
			return ""
		}
		prev, next := "  ", "  "
		if h.HasPrev() {
			prev = "‹ "
		}
		if h.HasNext() {
			next = " ›"
		}
		// Items spread evenly enough over pages for a rough hint
		perPage := (len(list) + h.TotalPages - 1) / h.TotalPages
		first := min(h.CurrentPage*perPage, len(list)-1)
		last := min(first+perPage, len(list)) - 1
		if first == last {
			return prev + list[first].Title + next
		}
		return fmt.Sprintf("%s%s … %s%s", prev, list[first].Title, list[last].Title, next)
	}
}
