package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort    = 3000
	defaultEnv     = "production"
	defaultDBPort  = "5432"
	defaultSchema  = "public"
	defaultSSLMode = "disable"
)

// Config holds server configuration
type Config struct {
	Port     int            `koanf:"port" validate:"min=1,max=65535"` // Port to listen on
	Env      string         `koanf:"app_env"`                         // Environment (development | production)
	BaseURL  string         `koanf:"base_url"`                        // Base URL for the server
	Database DatabaseConfig `koanf:"db"`
}

// DatabaseConfig describes the PostgreSQL connection. URL takes precedence
// over the individual parts when set.
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	Host     string `koanf:"host" validate:"required_without=URL"`
	Port     string `koanf:"port"`
	Database string `koanf:"database" validate:"required_without=URL"`
	Username string `koanf:"username" validate:"required_without=URL"`
	Password string `koanf:"password"`
	Schema   string `koanf:"schema"`
	SSLMode  string `koanf:"sslmode"`
}

func (c *Config) Log() {
	log.Info().
		Int("port", c.Port).
		Str("env", c.Env).
		Str("base_url", c.BaseURL).
		Str("db_host", c.Database.host()).
		Msg("server configuration")
}

// DSN returns the connection string handed to the pgx driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.Username, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Database,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("search_path", d.Schema)
	u.RawQuery = q.Encode()

	return u.String()
}

func (d DatabaseConfig) host() string {
	if d.URL == "" {
		return d.Host
	}
	u, err := url.Parse(d.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

// NewConfig creates a server configuration from environment variables.
// A .env file in the working directory is loaded first.
func NewConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		log.Error().Err(err).Msg("could not load environment variables")
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration value")
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		log.Error().Err(err).Msg("configuration validation failed")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("http://localhost:%d", c.Port)
	}
	if c.Database.Port == "" {
		c.Database.Port = defaultDBPort
	}
	if c.Database.Schema == "" {
		c.Database.Schema = defaultSchema
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultSSLMode
	}
}

// envKey maps environment variable names onto koanf paths:
// PORT -> port, DB_HOST -> db.host. Anything else is dropped.
func envKey(name string) string {
	key := strings.ToLower(name)
	switch key {
	case "port", "app_env", "base_url":
		return key
	}
	if strings.HasPrefix(key, "db_") {
		return "db." + strings.TrimPrefix(key, "db_")
	}
	return ""
}
