package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultEnvFile = ".env"

// LoadDotEnv loads variables from a .env file into the process environment.
// ENV_FILE_PATH overrides the default location. Variables already set win,
// and a missing file is not an error.
func LoadDotEnv() error {
	envFile := os.Getenv("ENV_FILE_PATH")
	if envFile == "" {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", envFile).Msg("no .env file found, using process environment")
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	log.Debug().Str("path", envFile).Msg("loaded environment file")
	return nil
}

// Load loads configuration from a file path and applies environment variable overrides
// Validation is deferred to allow CLI flag overrides to be applied first
func Load(configPath string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	// If config path is provided, layer the file over the defaults
	if configPath != "" {
		if err := loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Apply environment variable overrides
	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}

	// Note: Validation is NOT performed here to allow CLI flags to override
	// Call cfg.Validate() after applying CLI overrides in the caller

	return cfg, nil
}

// loadFromFile decodes a JSON or YAML file, chosen by extension, into cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigFileNotFound
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
	}

	return nil
}

// applyEnvironmentOverrides applies configuration from environment variables
func applyEnvironmentOverrides(cfg *Config) error {
	// Listen address
	if addr := os.Getenv("MCP_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	// Widget asset host
	if assetURL := os.Getenv("MCP_ASSET_BASE_URL"); assetURL != "" {
		cfg.AssetBaseURL = assetURL
	}

	// Allowed origins (comma-separated list)
	if allowedOrigins := os.Getenv("MCP_ALLOWED_ORIGINS"); allowedOrigins != "" {
		// Split by comma and trim whitespace
		origins := strings.Split(allowedOrigins, ",")
		cfg.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	if err := envBool("MCP_STATELESS_HTTP", &cfg.StatelessHTTP); err != nil {
		return err
	}

	if ttl := os.Getenv("MCP_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid MCP_SESSION_TTL %q: %w", ttl, err)
		}
		cfg.SessionTTL = Duration{d}
	}

	if err := envInt("MCP_RATE_LIMIT_PER_MINUTE", &cfg.RateLimit.RequestsPerMinute); err != nil {
		return err
	}
	if err := envInt("MCP_RATE_LIMIT_BURST", &cfg.RateLimit.Burst); err != nil {
		return err
	}

	if err := envBool("MCP_METRICS_ENABLED", &cfg.MetricsEnabled); err != nil {
		return err
	}

	// Debug mode
	if err := envBool("MCP_DEBUG", &cfg.Debug); err != nil {
		return err
	}

	// Log level
	if logLevel := os.Getenv("MCP_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return nil
}

func envBool(key string, dst *bool) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func envInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
