package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DataFile        string `mapstructure:"DATA_FILE"`
	CatalogFile     string `mapstructure:"CATALOG_FILE"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	SuggestionLimit int    `mapstructure:"SUGGESTION_LIMIT"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("DATA_FILE", "physiodoc.json")
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SUGGESTION_LIMIT", 15)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("DATA_FILE")
	v.BindEnv("CATALOG_FILE")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SUGGESTION_LIMIT")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
