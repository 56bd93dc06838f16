// Package config holds the application configuration, loaded from a YAML
// file, environment variables (BAP_ prefix) and command-line flags via
// viper. None of these values are parsed by the protocol core; they shape
// how the CLI connects and what it asks the engine to include in responses.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Response ResponseConfig `mapstructure:"response" yaml:"response"`
}

// ServerConfig describes how to reach the BAP automation engine.
type ServerConfig struct {
	// URL is the websocket endpoint, e.g. ws://localhost:9222.
	URL string `mapstructure:"url" yaml:"url"`
	// Token is an opaque bearer token sent on the dial request.
	Token string `mapstructure:"token" yaml:"token"`
	// ConnectTimeout bounds the dial plus initialize handshake.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig maps log levels to console colors.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// ResponseConfig carries response-shaping parameters forwarded to the
// engine on observation calls.
type ResponseConfig struct {
	// MaxElements caps the interactive-element list in observations.
	MaxElements int `mapstructure:"max_elements" yaml:"max_elements"`
	// Tier selects the response verbosity tier ("minimal", "standard",
	// "full"). Interpreted by the engine, never by this SDK.
	Tier string `mapstructure:"tier" yaml:"tier"`
}

// SetDefaults registers every default value with viper. Called before the
// config file and environment are read so explicit settings win.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "")
	v.SetDefault("server.token", "")
	v.SetDefault("server.connect_timeout", 10*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "bap")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")

	v.SetDefault("response.max_elements", 50)
	v.SetDefault("response.tier", "standard")
}

// DefaultDir returns the per-user configuration directory (~/.bap).
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".bap"), nil
}

// Validate rejects configurations the CLI cannot act on.
func (c *Config) Validate() error {
	if c.Server.ConnectTimeout < 0 {
		return fmt.Errorf("server.connect_timeout must not be negative")
	}
	if c.Response.MaxElements < 0 {
		return fmt.Errorf("response.max_elements must not be negative")
	}
	switch c.Response.Tier {
	case "", "minimal", "standard", "full":
	default:
		return fmt.Errorf("response.tier must be minimal, standard or full, got %q", c.Response.Tier)
	}
	return nil
}
