package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Timer TimerConfig
	Deck  DeckConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// TimerConfig holds countdown settings for exercise slides.
type TimerConfig struct {
	DurationSeconds int `mapstructure:"duration_seconds"`
}

// DeckConfig holds startup settings.
type DeckConfig struct {
	StartIndex int `mapstructure:"start_index"`
}

const (
	minTimerSeconds = 1
	maxTimerSeconds = 3600
)

// Load reads configuration from file and env. Env var overrides use prefix FIELDDECK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.markdown_style", "auto")
	v.SetDefault("timer.duration_seconds", 60)
	v.SetDefault("deck.start_index", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FIELDDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fielddeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FIELDDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// normalize clamps out-of-range values rather than failing startup;
// a deck that opens beats a deck that complains.
func (c *Config) normalize() {
	if strings.TrimSpace(c.UI.MarkdownStyle) == "" {
		c.UI.MarkdownStyle = "auto"
	}
	if c.Timer.DurationSeconds < minTimerSeconds {
		c.Timer.DurationSeconds = 60
	}
	if c.Timer.DurationSeconds > maxTimerSeconds {
		c.Timer.DurationSeconds = maxTimerSeconds
	}
	if c.Deck.StartIndex < 0 {
		c.Deck.StartIndex = 0
	}
}
