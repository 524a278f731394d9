package websms

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries environment-supplied gateway settings. The core client
// never reads the environment itself (debug switch aside); this loader is
// a convenience for embedding applications that configure the gateway the
// usual twelve-factor way.
type Config struct {
	Login    string        `envconfig:"LOGIN"`
	Password string        `envconfig:"PASSWORD"`
	Endpoint string        `envconfig:"ENDPOINT"`
	Timeout  time.Duration `envconfig:"TIMEOUT"`
}

// ConfigFromEnv loads gateway settings from WEBSMS_* environment
// variables, reading a .env file first when one is present.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("websms", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Client from cfg. Unset optional settings keep
// their defaults; explicit opts are applied last and win.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := make([]Option, 0, 2+len(opts))
	if cfg.Endpoint != "" {
		base = append(base, WithEndpoint(cfg.Endpoint))
	}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.Timeout))
	}
	return New(cfg.Login, cfg.Password, append(base, opts...)...)
}
