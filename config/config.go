package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MEDIASHELF_API_URL
const EnvPrefix = "MEDIASHELF"

// DefaultAPIURL is used when no api.url is configured
const DefaultAPIURL = "http://localhost:8080/api"

// Load loads the configuration from file and environment. A missing config
// file is not an error unless configPath was given explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mediashelf"))
		}

		v.AddConfigPath("/etc/mediashelf/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("api.user_agent", "mediashelf")

	v.SetDefault("loader.on_failure", "not_found")
	v.SetDefault("loader.concurrency", 5)

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	u, err := url.Parse(cfg.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.url must be an absolute http(s) URL: %s", cfg.API.URL)
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative: %s", cfg.API.Timeout)
	}

	validPolicies := map[string]bool{
		"not_found": true,
		"empty":     true,
	}
	if !validPolicies[cfg.Loader.OnFailure] {
		return fmt.Errorf("invalid loader.on_failure: %s (must be 'not_found' or 'empty')", cfg.Loader.OnFailure)
	}

	if cfg.Loader.Concurrency < 1 {
		return fmt.Errorf("loader.concurrency must be at least 1, got %d", cfg.Loader.Concurrency)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output.format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
