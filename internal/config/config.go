// Package config resolves runtime settings for the transfer client and the
// stub server.
//
// Sources are applied in order, later ones winning:
//
//	defaults -> .env file -> environment -> command-line flags
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DefaultEnvFile = ".env"

var (
	ErrInvalidBaseURL = errors.New("config: base url must be an absolute http(s) url")
	ErrInvalidTimeout = errors.New("config: request timeout must be > 0")
)

type Config struct {
	BaseURL        string        `env:"BANK_BASE_URL" envDefault:"https://my-bank-backend.onrender.com/api"`
	RequestTimeout time.Duration `env:"BANK_REQUEST_TIMEOUT" envDefault:"15s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
	StubAddr       string        `env:"BANKSTUB_ADDR" envDefault:"127.0.0.1:8080"`
}

func (c *Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}

	return nil
}
