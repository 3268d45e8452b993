package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			Key:     "valid-api-key",
			BaseURL: "https://avwx.rest/api/",
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: "console"},
		Watch:   WatchConfig{Schedule: "*/10 * * * *", Kind: "metar"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing key", mutate: func(c *Config) { c.API.Key = "" }, wantErr: true, errContains: "AVWX_API_KEY"},
		{name: "placeholder key", mutate: func(c *Config) { c.API.Key = "your-api-key-here" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = -time.Second }, wantErr: true},
		{name: "negative retries", mutate: func(c *Config) { c.API.MaxRetries = -1 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: true, errContains: "logging level"},
		{name: "invalid output format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
		{name: "invalid schedule", mutate: func(c *Config) { c.Watch.Schedule = "every minute" }, wantErr: true, errContains: "watch.schedule"},
		{name: "empty schedule", mutate: func(c *Config) { c.Watch.Schedule = "" }},
		{name: "invalid watch kind", mutate: func(c *Config) { c.Watch.Kind = "notam" }, wantErr: true, errContains: "watch.kind"},
		{name: "watch kind is case-insensitive", mutate: func(c *Config) { c.Watch.Kind = "TAF" }},
		{name: "metrics enabled without textfile", mutate: func(c *Config) { c.Metrics.Enabled = true }, wantErr: true, errContains: "metrics.textfile"},
		{name: "metrics enabled with textfile", mutate: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Textfile = "/var/lib/node_exporter/goavwx.prom"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  key: file-key
  timeout: 10s
logging:
  level: debug
filter:
  ifr: rulesAtLeast("IFR")
watch:
  stations: [KJFK, KLGA]
`), 0o600))

	t.Run("file values and defaults", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "file-key", cfg.API.Key)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, "https://avwx.rest/api/", cfg.API.BaseURL)
		assert.Equal(t, time.Second, cfg.API.RetryWait)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, `rulesAtLeast("IFR")`, cfg.Filter["ifr"])
		assert.Equal(t, []string{"KJFK", "KLGA"}, cfg.Watch.Stations)
		assert.Equal(t, "metar", cfg.Watch.Kind)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("AVWX_API_KEY", "env-key")
		t.Setenv("AVWX_OUTPUT_FORMAT", "json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.API.Key)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AVWX_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("AVWX_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("AVWX_TEST_DOTENV"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("AVWX_TEST_DOTENV"))

	assert.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
}
