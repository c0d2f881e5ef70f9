// Package config resolves runtime settings from defaults, an optional .env
// file and CTGDX_* environment variables. Command-line flags are applied
// on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/ctgdx/internal/logging"
)

// Config holds runtime settings.
type Config struct {
	// CatalogPath overrides the embedded catalog when set.
	CatalogPath string

	// LogLevel is one of debug, info, warn, error. Default: "info".
	LogLevel string

	// LogFormat is "text" or "json". Default: "text".
	LogFormat string

	// LogFile receives logs when set. The TUI discards logs otherwise.
	LogFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("CTGDX_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}
	if l := os.Getenv("CTGDX_LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}
	if f := os.Getenv("CTGDX_LOG_FORMAT"); f != "" {
		cfg.LogFormat = f
	}
	if f := os.Getenv("CTGDX_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}

	return cfg
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are named) without overriding the existing environment. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	return nil
}
