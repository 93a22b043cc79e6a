package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/pagination"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	policy, err := cfg.ClampPolicy()
	require.NoError(t, err)
	assert.Equal(t, pagination.ClampLazy, policy)
	assert.Equal(t, "carousel", cfg.ClassPrefix)
	assert.True(t, cfg.Mouse)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, `
class_prefix = "gallery"
clamp = "eager"

[styles.gallery-item]
border_color = "63"
bold = true

[[items]]
title = "One"
body = "first panel"

[[items]]
title = "Two"
body = "second panel"
`)

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ClassPrefix = "gallery"
	want.Clamp = "eager"
	want.Styles = map[string]StyleSpec{
		"gallery-item": {BorderColor: "63", Bold: true},
	}
	want.Items = []domain.Item{
		{Title: "One", Body: "first panel"},
		{Title: "Two", Body: "second panel"},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService("").LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFromPathRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `panel_widht = 20`)
	_, err := NewConfigService(path).LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panel_widht")
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"clamp":     `clamp = "sometimes"`,
		"width":     `panel_width = 0`,
		"height":    `panel_height = -1`,
		"threshold": `swipe_threshold = -2`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, content)
			_, err := NewConfigService(path).LoadFromPath(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")
	bus := eventbus.New(nil)

	var loaded []string
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded = append(loaded, e.(eventbus.ConfigLoadedEvent).Path)
	})

	cfg, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{path}, loaded)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	bus := eventbus.New(nil)
	saved := 0
	bus.Subscribe(eventbus.EventConfigSaved, func(eventbus.DomainEvent) { saved++ })

	svc := NewConfigServiceWithBus(path, bus)
	assert.Equal(t, path, svc.Path())

	cfg := DefaultConfig()
	cfg.PanelWidth = 24
	cfg.Items = []domain.Item{{Title: "a", Body: "b"}}
	require.NoError(t, svc.Save(cfg))
	assert.Equal(t, 1, saved)

	got, err := svc.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
