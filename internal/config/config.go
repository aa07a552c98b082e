package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is read once at startup and threaded explicitly into the components
// that need it. Nothing re-reads the environment after LoadConfig returns.
type Config struct {
	Server ServerConfig
	Rates  RatesConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
}

type RatesConfig struct {
	// Provider names the upstream rate source; unknown names fail at first
	// use with provider.ErrUnknownProvider.
	Provider string `env:"RATES_PROVIDER" env-default:"openexchangerates"`

	OpenExchangeBaseURL string `env:"OPENEXCHANGE_BASE_URL" env-default:"https://openexchangerates.org/api/"`
	// OpenExchangeAppID is required only when the openexchangerates provider
	// is selected. Absence is reported at first use, not at startup.
	OpenExchangeAppID string `env:"OPENEXCHANGE_APP_ID"`

	RatesAPIBaseURL string `env:"RATESAPI_BASE_URL" env-default:"https://ratesapi.io/api/"`

	// ForceDecimal makes every decode and conversion use arbitrary-precision
	// decimal arithmetic.
	ForceDecimal bool `env:"RATES_FORCE_DECIMAL" env-default:"false"`

	Timeout time.Duration `env:"RATES_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
