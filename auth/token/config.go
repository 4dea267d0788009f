package token

import (
	"errors"
	"time"
)

// Config configures the token service.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Secret is the HMAC signing key.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// ExpireMinutes is the access token lifetime in minutes (default: 60).
	ExpireMinutes int `yaml:"access_token_expire_minutes" mapstructure:"access_token_expire_minutes"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.ExpireMinutes == 0 {
		c.ExpireMinutes = 60
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token: secret is required")
	}
	return nil
}

// TTL returns the configured token lifetime as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}
