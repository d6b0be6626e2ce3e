package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "HOST", "PORT", "APP_NAME", "WWW_HOST", "USERS_HOST",
	"BODY_LIMIT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "Echo Web", cfg.AppName)
	assert.Equal(t, "www.rust-lang.org", cfg.WWWHost)
	assert.Equal(t, "users.rust-lang.org", cfg.UsersHost)
	assert.Equal(t, "1M", cfg.BodyLimit)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("APP_NAME", "Demo")
	t.Setenv("WWW_HOST", "www.example.com")
	t.Setenv("USERS_HOST", "users.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "Demo", cfg.AppName)
	assert.Equal(t, "www.example.com", cfg.WWWHost)
	assert.Equal(t, "users.example.com", cfg.UsersHost)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 0.0001)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"non-numeric PORT", "PORT", "http", "PORT must be a number"},
		{"PORT out of range", "PORT", "70000", "PORT must be a number"},
		{"PORT zero", "PORT", "0", "PORT must be a number"},
		{"same hosts", "USERS_HOST", "www.rust-lang.org", "WWW_HOST and USERS_HOST must differ"},
		{"negative rate", "RATE_LIMIT_RPS", "-1", "RATE_LIMIT_RPS must not be negative"},
		{"unknown log format", "LOG_FORMAT", "xml", "LOG_FORMAT must be text or json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:      "8080",
			AppName:   "Echo Web",
			WWWHost:   "www.rust-lang.org",
			UsersHost: "users.rust-lang.org",
			LogFormat: "text",
		}
	}
	require.NoError(t, validate(valid()))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty APP_NAME", func(c *Config) { c.AppName = "" }, "APP_NAME is required"},
		{"empty WWW_HOST", func(c *Config) { c.WWWHost = "" }, "WWW_HOST is required"},
		{"empty USERS_HOST", func(c *Config) { c.UsersHost = "" }, "USERS_HOST is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
