package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption configures Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load reads configuration from a YAML file, a .env file, and environment
// variables, then applies defaults and validates. Environment variables use
// underscore-separated section paths, e.g. AUTH_SECRET -> auth.secret.
func Load(opts ...LoaderOption) (*Config, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.configFile == "" {
		o.configFile = findFirst("./config.yml", "./config/config.yml")
	}
	if o.envFile == "" {
		o.envFile = findFirst("./.env")
	}

	// .env first so its variables participate in the env override pass.
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", o.envFile, err)
		}
	}

	v := viper.New()
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", o.configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// bindEnvKeys registers the keys viper should read from the environment.
// AutomaticEnv alone does not surface unset config keys during Unmarshal.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"app.name", "app.version", "app.api_prefix", "app.environment", "app.debug",
		"server.host", "server.port", "server.read_timeout", "server.write_timeout",
		"server.idle_timeout", "server.allowed_origins",
		"logging.level", "logging.format", "logging.output", "logging.no_color",
		"auth.secret", "auth.access_token_expire_minutes", "auth.bcrypt_cost",
		"ratelimit.requests_per_minute",
		"users.backend", "users.redis.addr", "users.redis.password", "users.redis.db",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
