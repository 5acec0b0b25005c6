package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. Everything here is a presentation
// preference; calculator state is never persisted.
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent    string `mapstructure:"accent"`     // palette accent name for the focused button
	Mouse     bool   `mapstructure:"mouse"`      // enable mouse clicks on the keypad
	AltScreen bool   `mapstructure:"alt_screen"` // run in the terminal's alternate screen
}

// Load reads configuration from file and env. Env var overrides use prefix
// TALLYPAD_; TALLYPAD_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.accent", "pink")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TALLYPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tallypad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TALLYPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("TALLYPAD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tallypad", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
