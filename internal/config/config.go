package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultEventsPath = "/api/public/events"
	defaultServerAddr = ":8080"
	defaultAPITimeout = 10 * time.Second
	defaultZipkinURL  = "http://localhost:9411/api/v2/spans"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on.
type Provider interface {
	GetAPIBaseURL() string
	GetEventsPath() string
	GetAPITimeout() time.Duration
	GetAppBaseURL() string
	GetServerAddr() string
	GetSessionSecret() string
	GetLocation() *time.Location
	GetImageProxy() bool
	GetTracingEnabled() bool
	GetZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	APIBaseURL     string        `validate:"required,url"`
	EventsPath     string        `validate:"required,startswith=/"`
	APITimeout     time.Duration `validate:"gt=0"`
	AppBaseURL     string        `validate:"omitempty,url"`
	ServerAddr     string        `validate:"required"`
	SessionSecret  string        `validate:"omitempty,min=16"`
	Timezone       string
	ImageProxy     bool
	TracingEnabled bool
	ZipkinURL      string `validate:"omitempty,url"`

	location *time.Location
}

// Load reads the configuration from the environment and validates it. A .env
// file in the working directory is honoured when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIBaseURL:     strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		EventsPath:     envOr("EVENTS_PATH", defaultEventsPath),
		APITimeout:     defaultAPITimeout,
		AppBaseURL:     strings.TrimRight(os.Getenv("APP_BASE_URL"), "/"),
		ServerAddr:     envOr("SERVER_ADDR", defaultServerAddr),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		Timezone:       os.Getenv("SITE_TIMEZONE"),
		ImageProxy:     envBool("IMAGE_PROXY"),
		TracingEnabled: envBool("TRACING_ENABLED"),
		ZipkinURL:      envOr("ZIPKIN_URL", defaultZipkinURL),
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: %w", raw, err)
		}
		cfg.APITimeout = d
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.location = time.Local
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid SITE_TIMEZONE %q: %w", cfg.Timezone, err)
		}
		cfg.location = loc
	}

	return cfg, nil
}

// New loads the configuration and exits the process when it is unusable.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetEventsPath() string        { return c.EventsPath }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetImageProxy() bool          { return c.ImageProxy }
func (c *Config) GetTracingEnabled() bool      { return c.TracingEnabled }
func (c *Config) GetZipkinURL() string         { return c.ZipkinURL }

// GetLocation returns the time zone event dates are displayed in.
func (c *Config) GetLocation() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
