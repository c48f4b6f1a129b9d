package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. INVENTORY_SERVER_PORT.
const EnvPrefix = "INVENTORY"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Security  SecurityConfig  `mapstructure:"security"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SecurityConfig controls the anti-forgery token of the product form.
type SecurityConfig struct {
	CSRFEnabled bool          `mapstructure:"csrf_enabled"`
	Secret      string        `mapstructure:"secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig limits form submissions per client IP.
// The memory backend is a token bucket of RPS with Burst; the redis backend
// allows Burst submissions per Window and is shared between replicas.
type RateLimitConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Backend   string        `mapstructure:"backend"`
	RPS       float64       `mapstructure:"rps"`
	Burst     int           `mapstructure:"burst"`
	Window    time.Duration `mapstructure:"window"`
	RedisAddr string        `mapstructure:"redis_addr"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("log.level", "info")

	v.SetDefault("security.csrf_enabled", true)
	v.SetDefault("security.secret", "")
	v.SetDefault("security.token_ttl", "1h")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("ratelimit.window", "3s")
	v.SetDefault("ratelimit.redis_addr", "")
}

func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set %s_SERVER_PORT)", EnvPrefix)
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.Log.Level)
	}

	if config.Security.CSRFEnabled && config.Security.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive when CSRF protection is enabled")
	}

	rl := config.RateLimit
	if !rl.Enabled {
		return nil
	}
	if rl.Backend != "memory" && rl.Backend != "redis" {
		return fmt.Errorf("rate limit backend must be 'memory' or 'redis', got: %s", rl.Backend)
	}
	if rl.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got: %d", rl.Burst)
	}
	if rl.Backend == "memory" && rl.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got: %v", rl.RPS)
	}
	if rl.Backend == "redis" {
		if rl.RedisAddr == "" {
			return fmt.Errorf("redis address is required when rate limit backend is 'redis'")
		}
		if rl.Window <= 0 {
			return fmt.Errorf("rate limit window must be positive, got: %s", rl.Window)
		}
	}

	return nil
}
