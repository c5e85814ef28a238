package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	DatabaseURL      string
	StorageDriver    string
	MigrationsPath   string // empty: migrations embedded in the binary
	HTTPAddr         string
	Locale           string
	DiscordToken     string
	DiscordChannelID string
	GenerateInterval time.Duration
}

// Load reads the configuration from the environment, with an optional .env file, and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      getenv("DATABASE_URL"),
		StorageDriver:    getenv("STORAGE_DRIVER"),
		MigrationsPath:   getenv("MIGRATIONS_PATH"),
		HTTPAddr:         getenv("HTTP_ADDR"),
		Locale:           getenv("LOCALE"),
		DiscordToken:     strings.TrimSpace(getenv("DISCORD_TOKEN")),
		DiscordChannelID: strings.TrimSpace(getenv("DISCORD_CHANNEL_ID")),
	}

	if raw := strings.TrimSpace(getenv("GENERATE_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid GENERATE_INTERVAL (%q): %w", raw, err)
		}
		cfg.GenerateInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DiscordEnabled reports whether notifications go to a Discord channel.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// validate applies defaults and checks every rule on the loaded configuration.
func (c *Config) validate() error {
	if c.StorageDriver == "" {
		c.StorageDriver = DriverPostgres
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.GenerateInterval == 0 {
		c.GenerateInterval = 10 * time.Minute
	}
	if c.GenerateInterval < 0 {
		return fmt.Errorf("config: GENERATE_INTERVAL must be positive")
	}

	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/teetime?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StorageDriver)
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("config: DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}
	return nil
}
