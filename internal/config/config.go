package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config viene entera de env vars. Los defaults dejan el servicio corriendo
// en modo dev (sin Postgres, sin verifier) con cero configuración.
type Config struct {
	Port     string `env:"PORT" env-default:"8080"`
	Env      string `env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Si DSN queda vacío se usan los repos in-memory.
	DatabaseDSN    string `env:"DB_DSN" env-default:""`
	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"migrations"`

	Okta OktaConfig
}

// OktaConfig configura la verificación de tokens contra el identity provider.
// Con Issuer vacío el router queda en modo dev (X-Debug-User-ID).
type OktaConfig struct {
	Issuer   string `env:"OKTA_ISSUER" env-default:""`
	Audience string `env:"OKTA_AUDIENCE" env-default:"api://default"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsLocal es true para entornos de desarrollo.
func (c Config) IsLocal() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "local")
}
