package config

import "strings"

// Page names accepted for StartPage.
const (
	PageHub     = "hub"
	PageWelcome = "welcome"
)

// Config contains the runtime settings for the TUI, the console report and the
// MCP server. Use Default() to get sensible defaults, then override as needed.
type Config struct {
	// Logging
	LogLevel  string `mapstructure:"log_level"`  // debug, info, warn, error (default: info)
	LogFormat string `mapstructure:"log_format"` // console or json (default: console)
	LogFile   string `mapstructure:"log_file"`   // Log destination; empty disables TUI logging

	// Terminal
	AltScreen bool   `mapstructure:"alt_screen"` // Run the TUI in the alternate screen (default: true)
	Mouse     bool   `mapstructure:"mouse"`      // Enable mouse clicks on controls (default: true)
	StartPage string `mapstructure:"start_page"` // hub or welcome (default: hub)

	// MCP server identity
	ServerName    string `mapstructure:"server_name"`
	ServerVersion string `mapstructure:"server_version"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",

		AltScreen: true,
		Mouse:     true,
		StartPage: PageHub,

		ServerName:    "travelhub",
		ServerVersion: "1.0.0",
	}
}

// WithLogLevel returns a copy of the config with a modified log level.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// WithLogFile returns a copy of the config writing logs to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithAltScreen returns a copy of the config with the alternate screen enabled/disabled.
func (c Config) WithAltScreen(enabled bool) Config {
	c.AltScreen = enabled
	return c
}

// WithMouse returns a copy of the config with mouse support enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.Mouse = enabled
	return c
}

// WithStartPage returns a copy of the config opening on the given page.
func (c Config) WithStartPage(page string) Config {
	c.StartPage = page
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "LogLevel", Message: "must be one of debug, info, warn, error"}
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return &ConfigError{Field: "LogFormat", Message: "must be console or json"}
	}
	if c.StartPage != PageHub && c.StartPage != PageWelcome {
		return &ConfigError{Field: "StartPage", Message: "must be hub or welcome"}
	}
	if c.ServerName == "" {
		return &ConfigError{Field: "ServerName", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
