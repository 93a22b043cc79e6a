package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/config"
)

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	force = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"init"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitWritesConfigAndReportsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel", "config.toml")

	out, err := runInit(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Items, 4)

	_, err = runInit(t, "--config", path)
	require.Error(t, err, "existing file needs --force")

	out, err = runInit(t, "--config", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
}
