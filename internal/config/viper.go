package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`

	Ingest struct {
		// ProgressInterval is how many processed messages between
		// progress log lines.
		ProgressInterval int `mapstructure:"progress_interval" yaml:"progress_interval"`
		// LogBodyLimit caps how many characters of an unclassified
		// message body are written to the log.
		LogBodyLimit int `mapstructure:"log_body_limit" yaml:"log_body_limit"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Patterns struct {
		// File optionally points to a YAML pattern registry that
		// replaces the built-in table.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"patterns" yaml:"patterns"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then MOMO_-prefixed
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.momo-dashboard")
	v.AddConfigPath(".momo-dashboard")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "momo_transactions.db")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("ingest.progress_interval", 100)
	v.SetDefault("ingest.log_body_limit", 100)

	v.SetDefault("patterns.file", "")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", config.Log.Format)
	}

	if config.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if config.Ingest.ProgressInterval <= 0 {
		return fmt.Errorf("ingest progress interval must be positive")
	}
	if config.Ingest.LogBodyLimit <= 0 {
		return fmt.Errorf("ingest log body limit must be positive")
	}

	return nil
}
