package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, parsed from the environment
// once at startup and passed down explicitly.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DBPath      string        `env:"DB_PATH"`
	SecretKey   string        `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	TokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	CORSOrigins string        `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "rizotipo.db")
	}
	return cfg, nil
}
