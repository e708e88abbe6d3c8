package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Log struct {
	Level string `yaml:"level" env:"RICKMORTY_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file" env:"RICKMORTY_LOG_FILE"`
}

// Config is the process configuration. An empty Language means the locale
// is taken from the environment.
type Config struct {
	Endpoint       string        `yaml:"endpoint" env:"RICKMORTY_ENDPOINT" env-default:"https://rickandmortyapi.com/graphql"`
	Language       string        `yaml:"language" env:"RICKMORTY_LANG"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"RICKMORTY_REQUEST_TIMEOUT" env-default:"15s"`
	RateLimit      float64       `yaml:"rate_limit" env:"RICKMORTY_RATE_LIMIT" env-default:"2"`
	RateBurst      int           `yaml:"rate_burst" env:"RICKMORTY_RATE_BURST" env-default:"4"`
	MetricsAddr    string        `yaml:"metrics_addr" env:"RICKMORTY_METRICS_ADDR"`
	Log            Log           `yaml:"log"`
}

// Load reads path when given, then applies environment overrides and
// defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request_timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.RateLimit < 0 {
		return Config{}, fmt.Errorf("rate_limit must not be negative, got %v", cfg.RateLimit)
	}
	return cfg, nil
}
