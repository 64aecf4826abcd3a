package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const defaultRefreshInterval = 5 * time.Minute

// Config agrupa la configuración del servicio. Se lee de variables de
// entorno; godotenv (autoload en main) carga .env en dev.
type Config struct {
	Addr            string
	DBDSN           string
	LogLevel        string
	RefreshInterval time.Duration

	// Servicio de identidad; si falta, el server corre en modo dev y acepta
	// X-Debug-User-ID.
	AuthBaseURL string
	AuthAPIKey  string
}

// FromEnv lee y valida la configuración:
// - PORT (default 8080)
// - DB_DSN (vacío => repos in-memory)
// - LOG_LEVEL=debug|info|warn|error (default info)
// - DASHBOARD_REFRESH duración Go, ej "5m" (default 5m)
// - AUTH_SERVICE_URL / AUTH_SERVICE_API_KEY (vacíos => modo dev)
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:            ":8080",
		DBDSN:           os.Getenv("DB_DSN"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		RefreshInterval: defaultRefreshInterval,
		AuthBaseURL:     os.Getenv("AUTH_SERVICE_URL"),
		AuthAPIKey:      os.Getenv("AUTH_SERVICE_API_KEY"),
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}

	if v := os.Getenv("DASHBOARD_REFRESH"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("DASHBOARD_REFRESH: %w", err)
		}
		cfg.RefreshInterval = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.RefreshInterval, validation.Min(time.Second)),
	)
}
