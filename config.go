package lava

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven client settings.
type Config struct {
	APIKey      string        `envconfig:"LAVA_API_KEY" required:"true"`
	BaseURL     string        `envconfig:"LAVA_BASE_URL" default:"https://api.lava.ru"`
	HTTPTimeout time.Duration `envconfig:"LAVA_HTTP_TIMEOUT" default:"30s"`
}

// LoadConfig reads the client configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from environment variables. Convenience
// constructor for services that keep credentials in the environment; extra
// options are applied after the environment-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
	}, opts...)
	return New(cfg.APIKey, opts...), nil
}
