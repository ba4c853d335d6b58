package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// Config holds all configuration for the lead finder MCP server
type Config struct {
	Addr           string          `json:"addr" yaml:"addr"`
	AssetBaseURL   string          `json:"assetBaseUrl" yaml:"assetBaseUrl"`
	AllowedOrigins []string        `json:"allowedOrigins" yaml:"allowedOrigins"` // empty allows any origin
	StatelessHTTP  bool            `json:"statelessHttp" yaml:"statelessHttp"`
	SessionTTL     Duration        `json:"sessionTtl" yaml:"sessionTtl"`
	RateLimit      RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	MetricsEnabled bool            `json:"metricsEnabled" yaml:"metricsEnabled"`
	Debug          bool            `json:"debug" yaml:"debug"`
	LogLevel       string          `json:"logLevel" yaml:"logLevel"`
}

// RateLimitConfig bounds POST /mcp traffic per client IP.
// A zero RequestsPerMinute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

// Enabled reports whether requests are limited at all
func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerMinute > 0
}

// Duration is a time.Duration written as a Go duration string ("24h") in config files
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string such as \"24h\": %w", err)
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrMissingAddr
	}

	u, err := url.Parse(c.AssetBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAssetBaseURL, c.AssetBaseURL)
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if !c.StatelessHTTP && c.SessionTTL.Duration <= 0 {
		return ErrInvalidSessionTTL
	}

	if c.RateLimit.RequestsPerMinute < 0 || (c.RateLimit.Enabled() && c.RateLimit.Burst < 1) {
		return fmt.Errorf("%w: %d per minute, burst %d", ErrInvalidRateLimit, c.RateLimit.RequestsPerMinute, c.RateLimit.Burst)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Addr:           ":8000",
		AssetBaseURL:   widgets.DefaultAssetBaseURL,
		AllowedOrigins: []string{},
		StatelessHTTP:  true,
		SessionTTL:     Duration{DefaultSessionTTL},
		RateLimit:      RateLimitConfig{RequestsPerMinute: 0, Burst: 20},
		MetricsEnabled: true,
		Debug:          false,
		LogLevel:       "info",
	}
}

// DefaultSessionTTL is how long an idle stateful session survives
const DefaultSessionTTL = 24 * time.Hour
