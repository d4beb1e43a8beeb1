// Package config loads saleorctl settings from a YAML file and SALEOR_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/llehouerou/go-saleor-client/auth"
	"github.com/llehouerou/go-saleor-client/graphql"
	"github.com/llehouerou/go-saleor-client/internal/logger"
)

// Store kinds.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config holds all saleorctl configuration
type Config struct {
	API   APIConfig
	Retry RetryConfig
	Auth  AuthConfig
	Store StoreConfig
	Log   LogConfig
}

// APIConfig locates the GraphQL endpoint
type APIConfig struct {
	URL     string
	Timeout time.Duration
	Debug   bool
}

// RetryConfig controls retries of transient transport failures
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// AuthConfig holds login credentials
type AuthConfig struct {
	Email         string
	Password      string
	RefreshLeeway time.Duration
}

// StoreConfig selects where session tokens are kept
type StoreConfig struct {
	Kind      string // memory, file, redis
	Path      string
	RedisAddr string
	RedisDB   int
	Key       string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "http://localhost:8000/graphql/")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.debug", false)

	retry := graphql.DefaultRetryConfig()
	v.SetDefault("retry.max_retries", retry.MaxRetries)
	v.SetDefault("retry.base_delay", retry.BaseDelay)
	v.SetDefault("retry.max_delay", retry.MaxDelay)

	v.SetDefault("auth.email", "")
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.refresh_leeway", auth.DefaultLeeway)

	v.SetDefault("store.kind", StoreFile)
	v.SetDefault("store.path", "")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("store.key", auth.DefaultRedisKey)

	log := logger.DefaultConfig()
	v.SetDefault("log.level", log.Level)
	v.SetDefault("log.format", log.Format)
	v.SetDefault("log.output", log.Output)
}

// Load reads the configuration. With an empty path, saleorctl.yaml is
// looked up in the working directory and the user configuration directory
// and may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("saleorctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/saleorctl")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SALEOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		API: APIConfig{
			URL:     v.GetString("api.url"),
			Timeout: v.GetDuration("api.timeout"),
			Debug:   v.GetBool("api.debug"),
		},
		Retry: RetryConfig{
			MaxRetries: v.GetInt("retry.max_retries"),
			BaseDelay:  v.GetDuration("retry.base_delay"),
			MaxDelay:   v.GetDuration("retry.max_delay"),
		},
		Auth: AuthConfig{
			Email:         v.GetString("auth.email"),
			Password:      v.GetString("auth.password"),
			RefreshLeeway: v.GetDuration("auth.refresh_leeway"),
		},
		Store: StoreConfig{
			Kind:      strings.ToLower(v.GetString("store.kind")),
			Path:      v.GetString("store.path"),
			RedisAddr: v.GetString("store.redis_addr"),
			RedisDB:   v.GetInt("store.redis_db"),
			Key:       v.GetString("store.key"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if err := c.API.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative"))
	}
	if c.Retry.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("retry.max_retries must not be negative"))
	}
	if c.Retry.MaxDelay < c.Retry.BaseDelay {
		errs = append(errs, fmt.Errorf("retry.max_delay must not be below retry.base_delay"))
	}
	switch c.Store.Kind {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		errs = append(errs, fmt.Errorf("store.kind must be one of memory, file, redis; got %q", c.Store.Kind))
	}
	return errors.Join(errs...)
}

// Validate checks that URL is an absolute http(s) URL.
func (c APIConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("api.url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.url must be an absolute http(s) URL; got %q", c.URL)
	}
	return nil
}

// GraphQL converts c for graphql.Client.WithRetry.
func (c RetryConfig) GraphQL() graphql.RetryConfig {
	return graphql.RetryConfig{
		MaxRetries: c.MaxRetries,
		BaseDelay:  c.BaseDelay,
		MaxDelay:   c.MaxDelay,
	}
}

// Logger converts c for logger.New.
func (c LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:  c.Level,
		Format: c.Format,
		Output: c.Output,
	}
}
