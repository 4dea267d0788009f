// Package config defines the application configuration and its loader.
// Values come from a YAML file, a .env file, and environment variables, in
// increasing order of precedence.
package config

import (
	"fmt"

	"github.com/kbukum/apibase/auth/token"
	"github.com/kbukum/apibase/logger"
	"github.com/kbukum/apibase/redis"
	"github.com/kbukum/apibase/server"
)

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Server    server.Config   `yaml:"server" mapstructure:"server"`
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	RateLimit RateLimitConfig `yaml:"ratelimit" mapstructure:"ratelimit"`
	Users     UsersConfig     `yaml:"users" mapstructure:"users"`
}

// AppConfig contains application identity fields.
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Version     string `yaml:"version" mapstructure:"version"`
	APIPrefix   string `yaml:"api_prefix" mapstructure:"api_prefix"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// AuthConfig configures token issuance and the authentication gate.
type AuthConfig struct {
	Token token.Config `yaml:",inline" mapstructure:",squash"`

	// BcryptCost is the password hashing cost factor.
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`

	// ExcludePaths are literal request paths that bypass authentication,
	// compared exactly against the inbound route.
	ExcludePaths []string `yaml:"exclude_paths" mapstructure:"exclude_paths"`
}

// RateLimitConfig configures the per-client request rate limit.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
}

// UsersConfig selects and configures the user directory backing.
type UsersConfig struct {
	// Backend is "memory" or "redis".
	Backend string `yaml:"backend" mapstructure:"backend"`
	Redis   redis.Config `yaml:"redis" mapstructure:"redis"`
}

// ApplyDefaults fills in zero-valued fields across all sections.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "apibase"
	}
	if c.App.APIPrefix == "" {
		c.App.APIPrefix = "/api/v1"
	}
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.App.Environment == "development" {
		c.App.Debug = true
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Auth.Token.ApplyDefaults()
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 12
	}
	if len(c.Auth.ExcludePaths) == 0 {
		c.Auth.ExcludePaths = []string{
			c.App.APIPrefix + "/token",
			c.App.APIPrefix + "/register",
		}
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 100
	}
	if c.Users.Backend == "" {
		c.Users.Backend = "memory"
	}
	if c.Users.Backend == "redis" {
		c.Users.Redis.ApplyDefaults()
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Auth.Token.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got: %d)", c.Auth.BcryptCost)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("ratelimit.requests_per_minute must be non-negative (got: %d)", c.RateLimit.RequestsPerMinute)
	}
	switch c.Users.Backend {
	case "memory":
	case "redis":
		if err := c.Users.Redis.Validate(); err != nil {
			return fmt.Errorf("users.redis: %w", err)
		}
	default:
		return fmt.Errorf("users.backend must be memory or redis (got: %s)", c.Users.Backend)
	}
	return nil
}
