// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mssola/useragent"
)

// SearchDateLayout is the format of JAGRITI_SEARCH_FROM_DATE.
const SearchDateLayout = "2006-01-02"

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `env:"LEXI_ADDR" envDefault:":8080"`
	LogLevel       string        `env:"LEXI_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LEXI_LOG_FORMAT" envDefault:"json"`
	RequestTimeout time.Duration `env:"LEXI_REQUEST_TIMEOUT" envDefault:"30s"`
	// AdminToken enables the admin routes when non-empty.
	AdminToken string `env:"LEXI_ADMIN_TOKEN"`
}

// Jagriti configures the upstream e-Jagriti client and case search window.
type Jagriti struct {
	BaseURL   string        `env:"JAGRITI_BASE_URL" envDefault:"https://e-jagriti.gov.in/services"`
	UserAgent string        `env:"JAGRITI_USER_AGENT"`
	Timeout   time.Duration `env:"JAGRITI_TIMEOUT" envDefault:"15s"`
	// SearchFromDate is YYYY-MM-DD; empty means January 1 of the startup year.
	SearchFromDate string `env:"JAGRITI_SEARCH_FROM_DATE"`
}

// Config is the full process configuration.
type Config struct {
	Server  Server
	Jagriti Jagriti
}

// FromEnv parses the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromMap parses cfg from an explicit variable set instead of the process
// environment.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the struct tags cannot express.
func (c Config) Validate() error {
	var errs []error

	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("LEXI_REQUEST_TIMEOUT must be positive"))
	}
	if c.Jagriti.Timeout <= 0 {
		errs = append(errs, errors.New("JAGRITI_TIMEOUT must be positive"))
	}

	u, err := url.Parse(c.Jagriti.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("JAGRITI_BASE_URL must be an absolute http(s) URL, got %q", c.Jagriti.BaseURL))
	}

	if ua := strings.TrimSpace(c.Jagriti.UserAgent); ua != "" {
		if err := validateBrowserUserAgent(ua); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Jagriti.SearchFromDate != "" {
		if _, err := time.Parse(SearchDateLayout, c.Jagriti.SearchFromDate); err != nil {
			errs = append(errs, fmt.Errorf("JAGRITI_SEARCH_FROM_DATE must be YYYY-MM-DD, got %q", c.Jagriti.SearchFromDate))
		}
	}

	return errors.Join(errs...)
}

// FromDate returns the configured search window start, or the zero time when
// unset.
func (j Jagriti) FromDate() time.Time {
	if j.SearchFromDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(SearchDateLayout, j.SearchFromDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// validateBrowserUserAgent rejects agents upstream is likely to block: bots
// and strings no browser would send.
func validateBrowserUserAgent(ua string) error {
	parsed := useragent.New(ua)
	if parsed.Bot() {
		return fmt.Errorf("JAGRITI_USER_AGENT must be a browser user agent, got bot %q", ua)
	}
	if name, _ := parsed.Browser(); name == "" || parsed.Mozilla() == "" {
		return fmt.Errorf("JAGRITI_USER_AGENT must be a browser user agent, got %q", ua)
	}
	return nil
}
