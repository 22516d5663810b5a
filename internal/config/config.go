package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type Config struct {
	Server      ServerConfig
	Auth        AuthConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	Appointment AppointmentConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Reminder    ReminderConfig
	Storage     StorageConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT"             env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" env-default:"changeme"`
	JWTTTL    time.Duration `env:"JWT_TTL"    env-default:"24h"`
}

// DatabaseConfig is optional; audit logs are only persisted when URL is set.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

// RedisConfig is optional; sessions stay in memory when URL is empty.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type AppointmentConfig struct {
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY" env-default:"800ms"`
	FetchBatchSize   int           `env:"FETCH_BATCH_SIZE"  env-default:"10"`
	Timezone         string        `env:"TIMEZONE"          env-default:"UTC"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

type RateLimitConfig struct {
	LoginRPS   float64 `env:"LOGIN_RATE_RPS"   env-default:"5"`
	LoginBurst int     `env:"LOGIN_RATE_BURST" env-default:"10"`
}

type ReminderConfig struct {
	Cron string `env:"REMINDER_CRON" env-default:"0 8 * * *"`
}

// StorageConfig points portrait references at an S3 bucket. Empty Bucket keeps
// the references as plain URLs.
type StorageConfig struct {
	Bucket    string        `env:"S3_BUCKET"`
	Region    string        `env:"S3_REGION"     env-default:"us-east-1"`
	Endpoint  string        `env:"S3_ENDPOINT"`
	AccessKey string        `env:"S3_ACCESS_KEY"`
	SecretKey string        `env:"S3_SECRET_KEY"`
	URLTTL    time.Duration `env:"S3_URL_TTL"    env-default:"15m"`
}

// Load reads .env when present, then the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	if c.Auth.JWTTTL <= 0 {
		return fmt.Errorf("jwt ttl must be > 0 (got %s)", c.Auth.JWTTTL)
	}
	if c.Appointment.SimulatedLatency < 0 {
		return fmt.Errorf("simulated latency must be >= 0 (got %s)", c.Appointment.SimulatedLatency)
	}
	if c.Appointment.FetchBatchSize < 0 {
		return fmt.Errorf("fetch batch size must be >= 0 (got %d)", c.Appointment.FetchBatchSize)
	}
	if c.Appointment.Timezone == "" {
		c.Appointment.Timezone = timezone.DefaultTimezone
	}
	if !timezone.IsValid(c.Appointment.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Appointment.Timezone)
	}
	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit must be > 0 (rps %v, burst %d)", c.RateLimit.LoginRPS, c.RateLimit.LoginBurst)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console (got %q)", c.Log.Format)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func (c *CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
