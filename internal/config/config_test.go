package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/todo/internal/tasklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps searched config paths away from the developer's machine.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "front", cfg.Tasks.Placement)
	assert.Equal(t, "key", cfg.Tasks.Addressing)
	assert.Equal(t, "To-Do", cfg.UI.Title)
	assert.Equal(t, 40, cfg.UI.MinWidth)
	assert.Equal(t, 12, cfg.UI.MinHeight)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, tasklist.PlaceFront, cfg.Placement())
	assert.Equal(t, tasklist.AddressKey, cfg.Addressing())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)

	content := `tasks:
  placement: back
ui:
  title: Chores
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(content), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, tasklist.PlaceBack, cfg.Placement())
	assert.Equal(t, "Chores", cfg.UI.Title)

	// Untouched keys keep their defaults
	assert.Equal(t, "key", cfg.Tasks.Addressing)
	assert.Equal(t, 40, cfg.UI.MinWidth)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	content := `tasks:
  addressing: index
ui:
  min_width: 60
log:
  file: /tmp/todo.log
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tasklist.AddressIndex, cfg.Addressing())
	assert.Equal(t, 60, cfg.UI.MinWidth)
	assert.Equal(t, "/tmp/todo.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_TASKS_PLACEMENT", "back")
	t.Setenv("TODO_UI_MIN_WIDTH", "72")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, tasklist.PlaceBack, cfg.Placement())
	assert.Equal(t, 72, cfg.UI.MinWidth)
}

func TestLoad_InvalidValue(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte("tasks:\n  placement: middle\n"), 0644))

	_, err := Load("")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "tasks.placement", verr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad addressing", func(c *Config) { c.Tasks.Addressing = "uuid" }, "tasks.addressing"},
		{"zero width", func(c *Config) { c.UI.MinWidth = 0 }, "ui.min_width"},
		{"negative height", func(c *Config) { c.UI.MinHeight = -1 }, "ui.min_height"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, verr.Error(), tt.field)
		})
	}
}

func TestConfig_YAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks.Placement = "back"

	data, err := cfg.YAML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
	assert.Contains(t, string(data), "min_width: 40")
}
