package config

import "errors"

var (
	// ErrMissingAddr indicates that no listen address is configured
	ErrMissingAddr = errors.New("addr is required in configuration")

	// ErrInvalidAssetBaseURL indicates that the widget asset base URL is not an absolute http(s) URL
	ErrInvalidAssetBaseURL = errors.New("assetBaseUrl must be an absolute http or https URL")

	// ErrInvalidLogLevel indicates an unsupported log level
	ErrInvalidLogLevel = errors.New("logLevel must be one of debug, info, warn, error")

	// ErrInvalidSessionTTL indicates a non-positive session TTL in stateful mode
	ErrInvalidSessionTTL = errors.New("sessionTtl must be positive when statelessHttp is false")

	// ErrInvalidRateLimit indicates a negative rate or a burst below one while limiting is on
	ErrInvalidRateLimit = errors.New("rateLimit needs requestsPerMinute >= 0 and burst >= 1")

	// ErrConfigFileNotFound indicates that the config file was not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInvalidConfigFormat indicates that the config file could not be parsed
	ErrInvalidConfigFormat = errors.New("invalid configuration file format")
)
