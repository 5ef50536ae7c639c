package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the generator settings. It is assembled once at startup and
// treated as immutable afterwards.
type Config struct {
	ItemsPerCategory int    `validate:"gte=0"`
	OutputPath       string `validate:"required"`
	Seed             int64
	TexturesRoot     string `validate:"required"`
	PreviewPort      int    `validate:"gte=1,lte=65535"`
	LogLevel         string
	LogFormat        string
	Tuning           Tuning
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		OutputPath:   getEnv(EnvOutputPath, DefaultOutputPath),
		TexturesRoot: getEnv(EnvTexturesRoot, DefaultTexturesRoot),
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		Tuning:       DefaultTuning(),
	}

	count, err := getEnvInt(EnvCount, DefaultItemsPerCategory)
	if err != nil {
		return nil, err
	}
	cfg.ItemsPerCategory = count

	seed, err := getEnvInt64(EnvSeed, DefaultSeed)
	if err != nil {
		return nil, err
	}
	cfg.Seed = seed

	port, err := getEnvInt(EnvPreviewPort, DefaultPreviewPort)
	if err != nil {
		return nil, err
	}
	cfg.PreviewPort = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for structural and tuning errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}
