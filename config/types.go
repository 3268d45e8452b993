package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// APIConfig holds AVWX connection details
type APIConfig struct {
	Key        string        `mapstructure:"key"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryWait  time.Duration `mapstructure:"retry_wait"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Details bool   `mapstructure:"details"`
	Raw     bool   `mapstructure:"raw"`
}

// WatchConfig configures the polling watch command
type WatchConfig struct {
	Schedule string   `mapstructure:"schedule"`
	Stations []string `mapstructure:"stations"`
	Kind     string   `mapstructure:"kind"`
	Preset   string   `mapstructure:"preset"`
}

// MetricsConfig configures request metrics export
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Textfile  string `mapstructure:"textfile"`
}
