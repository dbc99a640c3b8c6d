// Package config provides configuration types and defaults for diffpager.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/fwojciec/diffpager/fs"
)

// Keys lists the key names bound to each pager action. An empty list keeps
// the built-in binding for that action.
type Keys struct {
	Down         []string `mapstructure:"down"`
	Up           []string `mapstructure:"up"`
	PageDown     []string `mapstructure:"page_down"`
	PageUp       []string `mapstructure:"page_up"`
	HalfPageDown []string `mapstructure:"half_page_down"`
	HalfPageUp   []string `mapstructure:"half_page_up"`
	Top          []string `mapstructure:"top"`
	Bottom       []string `mapstructure:"bottom"`
	Quit         []string `mapstructure:"quit"`
}

// Theme holds color overrides. Values are lipgloss color strings: ANSI
// palette indexes ("1".."255") or hex ("#87ff5f"). Empty keeps the default.
type Theme struct {
	HeaderForeground string `mapstructure:"header_foreground"`
	HeaderBackground string `mapstructure:"header_background"`
	Commit           string `mapstructure:"commit"`
	Hunk             string `mapstructure:"hunk"`
	Added            string `mapstructure:"added"`
	Deleted          string `mapstructure:"deleted"`
}

// Config holds all configuration options for diffpager.
type Config struct {
	Keys  Keys  `mapstructure:"keys"`
	Theme Theme `mapstructure:"theme"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Keys: Keys{
			Down:         []string{"j", "down"},
			Up:           []string{"k", "up"},
			PageDown:     []string{"pgdown", "f"},
			PageUp:       []string{"pgup", "b"},
			HalfPageDown: []string{"ctrl+d"},
			HalfPageUp:   []string{"ctrl+u"},
			Top:          []string{"g", "home"},
			Bottom:       []string{"G", "end"},
			Quit:         []string{"q", "ctrl+c"},
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("keys.down", defaults.Keys.Down)
	v.SetDefault("keys.up", defaults.Keys.Up)
	v.SetDefault("keys.page_down", defaults.Keys.PageDown)
	v.SetDefault("keys.page_up", defaults.Keys.PageUp)
	v.SetDefault("keys.half_page_down", defaults.Keys.HalfPageDown)
	v.SetDefault("keys.half_page_up", defaults.Keys.HalfPageUp)
	v.SetDefault("keys.top", defaults.Keys.Top)
	v.SetDefault("keys.bottom", defaults.Keys.Bottom)
	v.SetDefault("keys.quit", defaults.Keys.Quit)

	if path == "" {
		path = fs.DefaultConfigPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
