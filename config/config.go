package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env      string `mapstructure:"ENV"`
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DBURL        string `mapstructure:"DB_URL"`
	RedisAddress string `mapstructure:"REDIS_URL"`
	SymmetricKey string `mapstructure:"SYMMETRIC_KEY"`

	SessionIdleTimeout  time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	SessionMaxAge       time.Duration `mapstructure:"SESSION_MAX_AGE"`
	RoleRecheckInterval time.Duration `mapstructure:"ROLE_RECHECK_INTERVAL"`

	CORSOrigins         []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS        float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst      int      `mapstructure:"RATE_LIMIT_BURST"`
	LoginRateLimitRPS   float64  `mapstructure:"LOGIN_RATE_LIMIT_RPS"`
	LoginRateLimitBurst int      `mapstructure:"LOGIN_RATE_LIMIT_BURST"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

var keys = []string{
	"ENV", "PORT", "LOG_LEVEL",
	"DB_URL", "REDIS_URL", "SYMMETRIC_KEY",
	"SESSION_IDLE_TIMEOUT", "SESSION_MAX_AGE", "ROLE_RECHECK_INTERVAL",
	"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOGIN_RATE_LIMIT_RPS", "LOGIN_RATE_LIMIT_BURST",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	"ADMIN_EMAIL", "ADMIN_PASSWORD",
}

// Load reads the configuration from the environment, optionally seeded from a .env file.
func Load() (*AppConfig, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8930")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	v.SetDefault("SESSION_MAX_AGE", "12h")
	v.SetDefault("ROLE_RECHECK_INTERVAL", "5m")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)
	v.SetDefault("LOGIN_RATE_LIMIT_RPS", 1)
	v.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("ADMIN_EMAIL", "admin@healthcare.com")

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSOrigins = splitList(strings.Join(cfg.CORSOrigins, ","))

	return cfg, nil
}

// ValidateDatabase checks the settings the database commands need.
func (c *AppConfig) ValidateDatabase() error {
	if c.DBURL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	return nil
}

// Validate checks the settings the server cannot start without.
func (c *AppConfig) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if c.RedisAddress == "" {
		return fmt.Errorf("REDIS_URL is required")
	}
	if len(c.SymmetricKey) != 32 {
		return fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(c.SymmetricKey))
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive")
	}
	if c.RoleRecheckInterval < 0 {
		return fmt.Errorf("ROLE_RECHECK_INTERVAL must not be negative")
	}
	return nil
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// MailEnabled reports whether outgoing notification email is configured.
func (c *AppConfig) MailEnabled() bool {
	return c.SMTPHost != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
