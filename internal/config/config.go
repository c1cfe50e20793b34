package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not set")
	ErrUnsupportedDriver  = errors.New("unsupported database driver")
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Environment string
	Port        string

	Database DatabaseConfig
	Logging  LoggingConfig
	Server   ServerConfig

	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver string // "postgres", "mysql" or "sqlite"
	URL    string // connection string, or file path for sqlite
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoadEnv reads a .env file into the environment. A missing file is fine; the
// variables may come from the process environment instead.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}
	return nil
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	defaultFormat := "console"
	if env == "production" {
		defaultFormat = "json"
	}

	cfg := &Config{
		Environment: env,
		Port:        getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
			URL:    os.Getenv("DATABASE_URL"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultFormat),
		},
		AllowedOrigins: allowedOrigins(os.Getenv("CLIENT_URL"), os.Getenv("ALLOWED_ORIGINS")),
	}

	var err error

	if cfg.Server.ReadTimeout, err = getDuration("READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if cfg.Server.WriteTimeout, err = getDuration("WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if cfg.Server.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}

	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Address() string {
	return ":" + c.Port
}

func allowedOrigins(clientURL, extra string) []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(extra, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}
