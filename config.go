package soupfinance

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-provided configuration for NewFromEnv.
// Variables carry the SOUPFINANCE_ prefix, e.g. SOUPFINANCE_API_URL.
type Config struct {
	APIURL      string        `envconfig:"API_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
	SessionFile string        `envconfig:"SESSION_FILE"`
}

// NewFromEnv builds a Client from SOUPFINANCE_* environment variables.
// Extra options are applied after the ones the environment implies, so they
// win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("soupfinance", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	if cfg.SessionFile != "" {
		envOpts = append(envOpts, WithPersistentSessions(cfg.SessionFile))
	}
	return New(cfg.APIURL, append(envOpts, opts...)...), nil
}
