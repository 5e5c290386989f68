package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds application configuration, read from the environment.
// The API key stays empty when unset; the AI client reports the
// missing credential when the feature is actually used.
type Config struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"KANRI_MODEL" env-default:"gemini-2.5-flash"`
	Theme  string `env:"KANRI_THEME"`
	View   string `env:"KANRI_VIEW" env-default:"dashboard"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read env: %w", err)
	}
	return cfg, nil
}
