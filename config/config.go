// Package config reads process settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`
	// DatabaseURL selects the store. Empty means a local SQLite file.
	DatabaseURL string `env:"DATABASE_URL"`
	Debug       bool   `env:"DEBUG"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Minio Minio `envPrefix:"MINIO_"`
}

type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"instagram-media"`
	UseSSL    bool   `env:"USE_SSL"`
	PublicURL string `env:"PUBLIC_URL"`
}

// UploadsEnabled reports whether an object store is configured.
func (m Minio) UploadsEnabled() bool {
	return m.Endpoint != ""
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
