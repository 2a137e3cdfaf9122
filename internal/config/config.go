// Package config loads server configuration from file, environment, and
// flags via viper, and sets up the process logger.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyDBPath     = "db_path"
	KeyListenAddr = "listen_addr"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// Config holds all server configuration.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string
	// ListenAddr is the HTTP listen address.
	ListenAddr string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is either text or json.
	LogFormat string
}

// New returns a viper instance with defaults, environment binding
// (NAJDENO_ prefix), and an optional config file wired up. A missing
// config file is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyDBPath, "najdeno.sqlite3")
	v.SetDefault(KeyListenAddr, ":8000")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix("NAJDENO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("najdeno")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default one is optional.
		if configFile != "" {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// Load materializes and validates a Config from a viper instance.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBPath:     v.GetString(KeyDBPath),
		ListenAddr: v.GetString(KeyListenAddr),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db_path must not be empty")
	}
	if cfg.ListenAddr == "" {
		return nil, fmt.Errorf("listen_addr must not be empty")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// SetupLogger builds the process logger according to the configuration
// and installs it as the slog default.
func SetupLogger(cfg *Config) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
