// Package config loads runtime settings from the environment and an optional
// .env file. Values already present in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when neither the environment nor .env sets a value
const (
	DefaultScene     = "default"
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultMaxDepth  = 64
	DefaultOutputDir = "output"
	DefaultPort      = 8080
)

// S3Config holds the object storage settings used for uploads
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Config contains render and server settings
type Config struct {
	Scene     string
	Width     int
	Height    int
	MaxDepth  int
	OutputDir string
	Port      int
	S3        S3Config
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Scene:     DefaultScene,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MaxDepth:  DefaultMaxDepth,
		OutputDir: DefaultOutputDir,
		Port:      DefaultPort,
		S3:        S3Config{Region: "us-east-1"},
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds a Config.
// An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		Scene:     getEnv("RT_SCENE", def.Scene),
		OutputDir: getEnv("RT_OUTPUT_DIR", def.OutputDir),
		S3: S3Config{
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", def.S3.Region),
			Bucket:    getEnv("S3_BUCKET", ""),
		},
	}

	var err error
	if cfg.Width, err = getEnvInt("RT_WIDTH", def.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvInt("RT_HEIGHT", def.Height); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getEnvInt("RT_MAX_DEPTH", def.MaxDepth); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = getEnvInt("RT_PORT", def.Port); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that sizes are usable
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// getEnv returns the value of key, or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
