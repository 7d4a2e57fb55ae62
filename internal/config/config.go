// internal/config/config.go
//
// Runtime configuration.
// Values come from the process environment, optionally seeded from a .env file
// (godotenv, development only), and are read through viper with defaults.
// Load validates the result so commands can fail fast on bad settings.

package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds every setting the server and CLI read.
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string // "json" or "console"
	ClientOrigin       string
	Production         bool // secure cookies
	DBPath             string
	StoreBackend       string
	RedisAddr          string
	SessionTTL         time.Duration
	DailyTZ            string
	DailySalt          string
	DefaultGenerations int
	MaxGuesses         int // 0: unlimited
	SpriteHost         string
	PokedexFile        string // empty: embedded catalog
	PlayerSecret       string
	PlayerTokenDays    int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5175")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_PATH", "./data/app.db")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("SESSION_TTL", "48h")
	v.SetDefault("DAILY_TZ", "UTC")
	v.SetDefault("DAILY_SALT", "")
	v.SetDefault("DEFAULT_GENERATIONS", 3)
	v.SetDefault("MAX_GUESSES", 0)
	v.SetDefault("SPRITE_HOST", "")
	v.SetDefault("POKEDEX_FILE", "")
	v.SetDefault("PLAYER_SECRET", "dev_secret_change_me")
	v.SetDefault("PLAYER_TOKEN_DAYS", 180)
}

// Load reads .env (if present) and the environment, then validates.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	c := &Config{
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		ClientOrigin:       v.GetString("CLIENT_ORIGIN"),
		Production:         v.GetString("APP_ENV") == "production",
		DBPath:             v.GetString("DB_PATH"),
		StoreBackend:       v.GetString("STORE_BACKEND"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		DailyTZ:            v.GetString("DAILY_TZ"),
		DailySalt:          v.GetString("DAILY_SALT"),
		DefaultGenerations: v.GetInt("DEFAULT_GENERATIONS"),
		MaxGuesses:         v.GetInt("MAX_GUESSES"),
		SpriteHost:         v.GetString("SPRITE_HOST"),
		PokedexFile:        v.GetString("POKEDEX_FILE"),
		PlayerSecret:       v.GetString("PLAYER_SECRET"),
		PlayerTokenDays:    v.GetInt("PLAYER_TOKEN_DAYS"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT: invalid port %q", c.Port))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT: must be json or console, got %q", c.LogFormat))
	}
	switch c.StoreBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR: required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND: unknown backend %q", c.StoreBackend))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL: must be positive"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("DAILY_TZ: %w", err))
	}
	if c.DefaultGenerations < 1 {
		errs = append(errs, errors.New("DEFAULT_GENERATIONS: must be at least 1"))
	}
	if c.MaxGuesses < 0 {
		errs = append(errs, errors.New("MAX_GUESSES: must not be negative"))
	}
	if len(c.PlayerSecret) < 16 {
		errs = append(errs, errors.New("PLAYER_SECRET: must be at least 16 bytes"))
	}
	if c.PlayerTokenDays < 1 {
		errs = append(errs, errors.New("PLAYER_TOKEN_DAYS: must be at least 1"))
	}
	return errors.Join(errs...)
}

// Location resolves DailyTZ.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.DailyTZ)
}

// PlayerTokenTTL is PlayerTokenDays as a duration.
func (c *Config) PlayerTokenTTL() time.Duration {
	return time.Duration(c.PlayerTokenDays) * 24 * time.Hour
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }
