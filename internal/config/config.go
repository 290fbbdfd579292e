package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	GeocodeBaseURL string        `env:"GEOCODE_BASE_URL" envDefault:"https://api.mapbox.com/geocoding/v5/mapbox.places"`
	GeocodeToken   string        `env:"GEOCODE_TOKEN"`
	OverlayURL     string        `env:"OVERLAY_URL"`
	OverlayTimeout time.Duration `env:"OVERLAY_TIMEOUT" envDefault:"30s"`
	SPADir         string        `env:"SPA_DIR" envDefault:"../web/dist"`
}

func Load() (*Config, error) {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
