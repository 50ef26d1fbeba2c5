// Package config loads the application configuration.
//
// Every setting is optional. With no file, environment or flags the app
// inserts new tasks at the front and addresses rows by stable key.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/todo/internal/tasklist"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when no explicit path is given
const FileName = ".todo"

// EnvPrefix prefixes environment overrides, e.g. TODO_TASKS_PLACEMENT
const EnvPrefix = "TODO"

// Config represents the full application configuration
type Config struct {
	Tasks TasksConfig `mapstructure:"tasks" yaml:"tasks"`
	UI    UIConfig    `mapstructure:"ui" yaml:"ui"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// TasksConfig selects the task list policies
type TasksConfig struct {
	Placement  string `mapstructure:"placement" yaml:"placement"`
	Addressing string `mapstructure:"addressing" yaml:"addressing"`
}

// UIConfig contains window settings
type UIConfig struct {
	Title     string `mapstructure:"title" yaml:"title"`
	MinWidth  int    `mapstructure:"min_width" yaml:"min_width"`
	MinHeight int    `mapstructure:"min_height" yaml:"min_height"`
}

// LogConfig contains logging settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// ValidationError reports a config field with an unusable value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{
			Placement:  tasklist.PlaceFront.String(),
			Addressing: tasklist.AddressKey.String(),
		},
		UI: UIConfig{
			Title:     "To-Do",
			MinWidth:  40,
			MinHeight: 12,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads configuration with priority:
// 1. TODO_* environment variables
// 2. the file at path, or .todo.yaml in the working directory or
//    $HOME/.config/todo when path is empty
// 3. Defaults
//
// An explicit path must exist; a missing searched-for file is not an error.
func Load(path string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("tasks.placement", defaults.Tasks.Placement)
	v.SetDefault("tasks.addressing", defaults.Tasks.Addressing)
	v.SetDefault("ui.title", defaults.UI.Title)
	v.SetDefault("ui.min_width", defaults.UI.MinWidth)
	v.SetDefault("ui.min_height", defaults.UI.MinHeight)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "todo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if _, err := tasklist.ParsePlacement(c.Tasks.Placement); err != nil {
		return &ValidationError{Field: "tasks.placement", Message: err.Error()}
	}
	if _, err := tasklist.ParseAddressing(c.Tasks.Addressing); err != nil {
		return &ValidationError{Field: "tasks.addressing", Message: err.Error()}
	}
	if c.UI.MinWidth <= 0 {
		return &ValidationError{Field: "ui.min_width", Message: "must be positive"}
	}
	if c.UI.MinHeight <= 0 {
		return &ValidationError{Field: "ui.min_height", Message: "must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return nil
}

// Placement returns the parsed insertion policy. Invalid values fall
// back to front insertion; call Validate first to reject them.
func (c *Config) Placement() tasklist.Placement {
	p, _ := tasklist.ParsePlacement(c.Tasks.Placement)
	return p
}

// Addressing returns the parsed row addressing scheme
func (c *Config) Addressing() tasklist.Addressing {
	a, _ := tasklist.ParseAddressing(c.Tasks.Addressing)
	return a
}

// YAML renders the configuration as YAML
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
