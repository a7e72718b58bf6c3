package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Ledger storage
	DataFile string `env:"DATA_FILE" envDefault:"accounts.json"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Sessions
	JWTSecret     string        `env:"JWT_SECRET"     envDefault:"dev-secret-change-me"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"15m"`

	// Admin directory, "user:password" pairs.
	AdminUsers []string `env:"ADMIN_USERS" envSeparator:"," envDefault:"admin:admin123"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AdminDirectory parses ADMIN_USERS into a username to secret mapping.
func (c *Config) AdminDirectory() (map[string]string, error) {
	admins := make(map[string]string, len(c.AdminUsers))
	for _, pair := range c.AdminUsers {
		user, secret, ok := strings.Cut(pair, ":")
		if !ok || user == "" || secret == "" {
			return nil, fmt.Errorf("malformed ADMIN_USERS entry %q, want user:password", pair)
		}
		admins[user] = secret
	}
	return admins, nil
}
