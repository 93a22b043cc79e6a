package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/pagination"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version        int                  `toml:"version"`
	ClassPrefix    string               `toml:"class_prefix"`    // styling hook prefix, no behavioural effect
	PanelWidth     int                  `toml:"panel_width"`     // columns per item panel
	PanelHeight    int                  `toml:"panel_height"`    // rows per item panel, 0 = fit content
	Clamp          string               `toml:"clamp"`           // "lazy" or "eager"
	SwipeThreshold int                  `toml:"swipe_threshold"` // drag columns needed for a swipe
	Mouse          bool                 `toml:"mouse"`
	LogFile        string               `toml:"log_file"`
	Styles         map[string]StyleSpec `toml:"styles,omitempty"` // keyed by "<prefix>-<slot>"
	Items          []domain.Item        `toml:"items,omitempty"`
}

// StyleSpec overrides the look of one styling hook
type StyleSpec struct {
	Foreground  string `toml:"foreground,omitempty"`
	Background  string `toml:"background,omitempty"`
	BorderColor string `toml:"border_color,omitempty"`
	Bold        bool   `toml:"bold,omitempty"`
}

// ClampPolicy parses the Clamp field
func (c *Config) ClampPolicy() (pagination.ClampPolicy, error) {
	return pagination.ParseClampPolicy(c.Clamp)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if _, err := c.ClampPolicy(); err != nil {
		return err
	}
	if c.PanelWidth <= 0 {
		return fmt.Errorf("panel_width must be positive, got %d", c.PanelWidth)
	}
	if c.PanelHeight < 0 {
		return fmt.Errorf("panel_height must not be negative, got %d", c.PanelHeight)
	}
	if c.SwipeThreshold < 0 {
		return fmt.Errorf("swipe_threshold must not be negative, got %d", c.SwipeThreshold)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "carousel", "config.toml")
}

// NewConfigService creates a config service for path; empty path uses DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the service's file, falling back to defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse config %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Styles == nil {
		cfg.Styles = make(map[string]StyleSpec)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		ClassPrefix:    "carousel",
		PanelWidth:     30,
		Clamp:          pagination.ClampLazy.String(),
		SwipeThreshold: 3,
		Mouse:          true,
		LogFile:        "carousel.log",
		Styles:         make(map[string]StyleSpec),
	}
}
