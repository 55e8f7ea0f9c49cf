package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"PlainCents"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Data struct {
		// RawDir is where relative CSV paths are resolved.
		RawDir string `envconfig:"DATA_RAW_DIR" default:"data/raw"`
	}

	Banks struct {
		// File optionally adds or overrides bank schemas (YAML).
		File string `envconfig:"BANKS_FILE"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		MaxUploadBytes int64         `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Synth struct {
		Seed uint64 `envconfig:"SYNTH_SEED" default:"42"`
		Year int    `envconfig:"SYNTH_YEAR" default:"2024"`
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
