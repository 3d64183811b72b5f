package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // host configuration document (.hcl, .yaml, .toml, .json)
	Language   string // active UI language tag
	ServerName string // chat server name, e.g. "chat.local"
	GatewayURL string // backend module gateway; empty runs fully local

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ServerName == "" {
		return nil, errors.New("ServerName is a required configuration field and cannot be empty")
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return &cfg, nil
}
