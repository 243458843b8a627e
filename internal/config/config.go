package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken      string
	Debug         bool
	UpdateTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	token := getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	cfg := &Config{
		BotToken:      token,
		UpdateTimeout: 60 * time.Second,
	}

	if v := getenv("BOT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOT_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if v := getenv("UPDATE_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid UPDATE_TIMEOUT %q: must be a positive number of seconds", v)
		}
		cfg.UpdateTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
