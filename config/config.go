package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is the default signing secret. It is public, so Validate
// only accepts it in the development environment.
const DevJWTSecret = "dev-secret-change-me"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig
	Cache    CacheConfig

	// Access
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Catalog
	Catalog CatalogConfig
	Site    SiteConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver          string // sqlite | postgres
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	Backend  string // memory | redis
	TTL      time.Duration
	Size     int
	RedisURL string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type CatalogConfig struct {
	PageSize          int
	AutocompleteLimit int
	CompareLimit      int
}

type SiteConfig struct {
	BaseURL  string
	SiteName string
	Currency string
}

// Load loads configuration using Viper. A .env file in the working
// directory is loaded into the environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/laptopxplorer/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/laptopxplorer/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
		if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
			cfg.Database.Driver = "postgres"
		}
	}

	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.RedisURL = viper.GetString("cache.redis_url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Cache.RedisURL = redisURL
	}

	// Access
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	cfg.Auth.Audience = viper.GetString("auth.audience")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")

	// Catalog
	cfg.Catalog.PageSize = viper.GetInt("catalog.page_size")
	cfg.Catalog.AutocompleteLimit = viper.GetInt("catalog.autocomplete_limit")
	cfg.Catalog.CompareLimit = viper.GetInt("catalog.compare_limit")

	cfg.Site.BaseURL = viper.GetString("site.base_url")
	cfg.Site.SiteName = viper.GetString("site.site_name")
	cfg.Site.Currency = viper.GetString("site.currency")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}

	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return errors.New("cache.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be memory or redis, got %q", c.Cache.Backend)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Auth.JWTSecret == DevJWTSecret && c.Environment.Name != "development" {
		return fmt.Errorf("auth.jwt_secret must be set outside development (environment %q)", c.Environment.Name)
	}
	if c.Catalog.PageSize <= 0 {
		return errors.New("catalog.page_size must be positive")
	}
	if c.Catalog.CompareLimit < 2 {
		return errors.New("catalog.compare_limit must be at least 2")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:laptopxplorer.db")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")

	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.size", 128)

	viper.SetDefault("auth.jwt_secret", DevJWTSecret)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("rate_limit.requests_per_minute", 120)

	viper.SetDefault("catalog.page_size", 12)
	viper.SetDefault("catalog.autocomplete_limit", 8)
	viper.SetDefault("catalog.compare_limit", 4)

	viper.SetDefault("site.base_url", "http://localhost:8080")
	viper.SetDefault("site.site_name", "LaptopXplorer")
	viper.SetDefault("site.currency", "USD")
}

// splitList flattens comma-separated entries, which is how list values
// arrive from environment variables.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
