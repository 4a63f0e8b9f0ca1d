package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DeckPath    string // the case deck, one .hcl file
	CatalogPath string // keyword catalog manifests, .hcl file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DeckPath == "" {
		return nil, errors.New("DeckPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
