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
	Database DatabaseConfig
	UI       UIConfig
	Import   ImportConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string
	SortBy     string
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	DefaultTag string
}

// Load reads configuration from file and env. Env var overrides use prefix ROLO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rolo", "rolo.db"))
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.sort_by", "name")
	v.SetDefault("import.default_tag", "imported")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROLO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rolo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROLO")
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

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("ROLO_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "rolo", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.sort_by", cfg.UI.SortBy)
	v.Set("import.default_tag", cfg.Import.DefaultTag)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
