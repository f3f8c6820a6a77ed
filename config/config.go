package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"3000"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// "*" allows every origin.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	DB DBConfig
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" default:"root"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"restaurant_db"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// Load reads .env (when present) and then the process environment.
// The returned bool reports whether a .env file was loaded.
func Load() (*Config, bool, error) {
	loaded := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, loaded, fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, loaded, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	for i, o := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(o)
	}
	return &cfg, loaded, nil
}

// DSN leaves parseTime off so DATE and TIME columns are returned as stored.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}
