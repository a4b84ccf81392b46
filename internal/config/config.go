package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	DefaultBaseURL    = "https://api.pagar.me/1"
	DefaultMaxRetries = 3

	// UseDefaultRetries in MaxRetries selects DefaultMaxRetries. Zero turns
	// retries off.
	UseDefaultRetries = -1
)

// ErrMissingAPIKey is returned by Validate when no api key is set.
var ErrMissingAPIKey = errors.New("pagarme api key is required")

// ClientConfig holds the settings shared by every call made through the SDK.
type ClientConfig struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://api.pagar.me/1"`
	APIKey         string        `env:"API_KEY"`
	EncryptionKey  string        `env:"ENCRYPTION_KEY"`
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"3"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" envDefault:"1s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Defaults returns a copy of c with unset fields filled in. MaxRetries is
// kept as given unless it is negative.
func (c ClientConfig) Defaults() ClientConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 1 * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}

	return c
}

// Validate checks the fields every request needs. EncryptionKey is only
// required by card hash key lookups and is checked there.
func (c ClientConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("pagarme.base_url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("pagarme.base_url must be http or https, got %q", c.BaseURL)
	}

	return nil
}

// FromEnv reads the client configuration from PAGARME_* environment variables.
func FromEnv() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "PAGARME_"}); err != nil {
		return ClientConfig{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}
