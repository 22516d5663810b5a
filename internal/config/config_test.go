package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 800*time.Millisecond, cfg.Appointment.SimulatedLatency)
	assert.Equal(t, 10, cfg.Appointment.FetchBatchSize)
	assert.Equal(t, "UTC", cfg.Appointment.Timezone)
	assert.Equal(t, "0 8 * * *", cfg.Reminder.Cron)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("FETCH_BATCH_SIZE", "3")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Zero(t, cfg.Appointment.SimulatedLatency)
	assert.Equal(t, 3, cfg.Appointment.FetchBatchSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.Origins())
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TIMEZONE", "Nowhere/Invalid")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:      ServerConfig{Port: "8080"},
			Auth:        AuthConfig{JWTSecret: "s", JWTTTL: time.Hour},
			Log:         LogConfig{Format: "json"},
			Appointment: AppointmentConfig{Timezone: "UTC", FetchBatchSize: 10},
			RateLimit:   RateLimitConfig{LoginRPS: 1, LoginBurst: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"zero ttl", func(c *Config) { c.Auth.JWTTTL = 0 }},
		{"negative latency", func(c *Config) { c.Appointment.SimulatedLatency = -time.Second }},
		{"negative batch", func(c *Config) { c.Appointment.FetchBatchSize = -1 }},
		{"zero burst", func(c *Config) { c.RateLimit.LoginBurst = 0 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown timezone", func(c *Config) { c.Appointment.Timezone = "Nowhere/Invalid" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidateDefaultsTimezone(t *testing.T) {
	c := Config{
		Server:      ServerConfig{Port: "8080"},
		Auth:        AuthConfig{JWTSecret: "s", JWTTTL: time.Hour},
		Log:         LogConfig{Format: "json"},
		Appointment: AppointmentConfig{FetchBatchSize: 10},
		RateLimit:   RateLimitConfig{LoginRPS: 1, LoginBurst: 1},
	}

	require.NoError(t, c.Validate())
	assert.Equal(t, "UTC", c.Appointment.Timezone)
}
