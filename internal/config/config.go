// Package config loads server settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "IMAGE_MCP_LOG_LEVEL"
	EnvImageDir  = "IMAGE_MCP_IMAGE_DIR"
	EnvSessionID = "IMAGE_MCP_SESSION_ID"
)

// Config holds the server settings. SessionID is never empty after Load: a
// random uuid is generated when none is configured.
type Config struct {
	LogLevel  string
	ImageDir  string
	SessionID string
}

// Load reads .env (if present) and the environment. Variables already set in
// the environment take precedence over .env.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "info")),
		ImageDir:  getEnv(EnvImageDir, "./images"),
		SessionID: getEnv(EnvSessionID, ""),
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	if cfg.LogLevel != "info" && cfg.LogLevel != "debug" {
		return Config{}, fmt.Errorf("%s must be info or debug, got %q", EnvLogLevel, cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.ImageDir) == "" {
		return Config{}, errors.New("image directory must not be empty")
	}

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
