package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa toda la configuración del servicio, solo desde env.
type Config struct {
	Port string `env:"PORT" env-default:"8080"`
	Env  string `env:"APP_ENV" env-default:"development"`

	// DSN de Postgres. Vacío => repos in-memory (modo dev/demo).
	DBDSN string `env:"DB_DSN" env-default:""`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	AppName   string `env:"APP_NAME" env-default:"vetcare360"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction decide si se ocultan detalles internos (stack traces) en errores.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

func (c Config) Addr() string {
	return ":" + c.Port
}
