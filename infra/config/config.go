package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application-level configuration.
type Config struct {
	Feed     FeedConfig     `mapstructure:"feed"`
	Playback PlaybackConfig `mapstructure:"playback"`
	State    StateConfig    `mapstructure:"state"`
}

// FeedConfig controls the paged source and pagination.
type FeedConfig struct {
	PageSize  int `mapstructure:"page_size"` // items per fetched page
	Lookahead int `mapstructure:"lookahead"` // trigger fetch when focus is this close to the end
	Pages     int `mapstructure:"pages"`     // total pages served by the mock source; 0 = unbounded
}

// PlaybackConfig controls the playback window and media simulation.
type PlaybackConfig struct {
	RenderRadius  int     `mapstructure:"render_radius"`  // max distance from focus that stays mounted
	PreloadRadius int     `mapstructure:"preload_radius"` // max distance from focus that prefetches bytes
	Threshold     float64 `mapstructure:"threshold"`      // visibility fraction that counts as in view
	Autoplay      string  `mapstructure:"autoplay"`       // "muted-only", "always", or "never"
	BufferMillis  int     `mapstructure:"buffer_millis"`  // simulated time until media readiness
}

// StateConfig controls UI state persistence.
type StateConfig struct {
	Path string `mapstructure:"path"` // bolt db path; empty = in-memory only
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Feed: FeedConfig{
			PageSize:  5,
			Lookahead: 3,
			Pages:     0,
		},
		Playback: PlaybackConfig{
			RenderRadius:  2,
			PreloadRadius: 3,
			Threshold:     0.8,
			Autoplay:      "muted-only",
			BufferMillis:  400,
		},
		State: StateConfig{
			Path: defaultStatePath(),
		},
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "reelfeed")
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "reelfeed", "state.db")
}

// Load reads configuration from reelfeed.yaml (config dir or cwd) and
// REELFEED_* environment overrides, on top of the defaults.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("reelfeed")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigDir())
	v.AddConfigPath(".")
	v.SetEnvPrefix("REELFEED")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the playback window cannot honor.
func Validate(cfg Config) error {
	if cfg.Playback.RenderRadius < 0 || cfg.Playback.PreloadRadius < 0 {
		return fmt.Errorf("playback radii must be non-negative")
	}
	if cfg.Playback.RenderRadius > cfg.Playback.PreloadRadius {
		return fmt.Errorf("render_radius (%d) must not exceed preload_radius (%d)",
			cfg.Playback.RenderRadius, cfg.Playback.PreloadRadius)
	}
	if cfg.Playback.Threshold <= 0 || cfg.Playback.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", cfg.Playback.Threshold)
	}
	if cfg.Feed.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1")
	}
	if cfg.Feed.Lookahead < 0 {
		return fmt.Errorf("lookahead must be non-negative")
	}
	return nil
}
