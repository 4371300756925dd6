package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Upload limits
	MaxUploadBytes int64
	MaxFiles       int

	// Scratch space for uploads and merge output
	TempDir string

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 104857600), // 100MB
		MaxFiles:       envInt("MAX_FILES", 32),

		TempDir: envOr("TEMP_DIR", os.TempDir()),

		ReadTimeout:  envDuration("READ_TIMEOUT", 60*time.Second),
		WriteTimeout: envDuration("WRITE_TIMEOUT", 120*time.Second),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 104857600
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = 32
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 60 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 120 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if info, err := os.Stat(c.TempDir); err != nil || !info.IsDir() {
		return fmt.Errorf("TEMP_DIR %q is not a usable directory", c.TempDir)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
