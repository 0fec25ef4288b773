package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Loader  LoaderConfig  `mapstructure:"loader"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the media API connection details
type APIConfig struct {
	// URL is the base address including the /api prefix
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoaderConfig controls how list pages react to failures
type LoaderConfig struct {
	OnFailure   string `mapstructure:"on_failure"`
	Concurrency int    `mapstructure:"concurrency"`
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
