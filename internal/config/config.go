package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// RiotConfig holds configuration for the Riot match-history sync.
type RiotConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Region     string `mapstructure:"region"`
	MatchCount int    `mapstructure:"match_count"`
}

// Config holds all runtime configuration for a roster session.
// Values are populated from .roster.yaml, ROSTER_* env vars, and CLI flags.
type Config struct {
	DataDir        string     `mapstructure:"data_dir"`
	Backend        string     `mapstructure:"backend"` // "file" or "sqlite"
	Locale         string     `mapstructure:"locale"`
	DDragonBaseURL string     `mapstructure:"ddragon_base_url"`
	Telemetry      bool       `mapstructure:"telemetry"`
	Verbose        bool       `mapstructure:"verbose"`
	Riot           RiotConfig `mapstructure:"riot"`
}

// defaultDataDir resolves to ~/.roster, falling back to a relative
// directory when the home dir cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roster"
	}
	return filepath.Join(home, ".roster")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("backend", "file")
	viper.SetDefault("locale", "en_US")
	viper.SetDefault("ddragon_base_url", "https://ddragon.leagueoflegends.com")
	viper.SetDefault("telemetry", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("riot.api_key", "")
	viper.SetDefault("riot.region", "euw1")
	viper.SetDefault("riot.match_count", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
