package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog sources.
const (
	SourceSQLite  = "sqlite"
	SourceBuiltin = "builtin"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig selects where the menu is read from.
type CatalogConfig struct {
	Source string
	Path   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol  string `mapstructure:"currency_symbol"`
	DefaultCategory string `mapstructure:"default_category"`
	AltScreen       bool   `mapstructure:"alt_screen"`
}

// LogConfig holds logging settings. An empty Path discards logs.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. A .env file in the working
// directory is applied first. Env var overrides use prefix THEMENU_.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("catalog.source", SourceSQLite)
	v.SetDefault("catalog.path", ":memory:")
	v.SetDefault("ui.currency_symbol", "R")
	v.SetDefault("ui.default_category", "")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "themenu", "themenu.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("THEMENU_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "themenu"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("THEMENU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot start with.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceSQLite:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return fmt.Errorf("config: catalog.path is required for the sqlite source")
		}
	case SourceBuiltin:
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	return nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg Config) (string, error) {
	path := os.Getenv("THEMENU_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "themenu", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.default_category", cfg.UI.DefaultCategory)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
