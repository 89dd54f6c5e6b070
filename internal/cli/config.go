package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/battleship-go/internal/console"
	"github.com/mcoot/battleship-go/internal/model"
)

// Environment variables read by the CLI
const (
	EnvOutput   = "BATTLESHIP_OUTPUT"
	EnvSeed     = "BATTLESHIP_SEED"
	EnvStrategy = "BATTLESHIP_STRATEGY"
	EnvVerbose  = "BATTLESHIP_VERBOSE"
)

// DefaultEnvFile is loaded if present; a missing default file is not an error
const DefaultEnvFile = ".env"

// Config holds CLI configuration
type Config struct {
	Output   string
	Seed     uint64
	Strategy string
	Verbose  bool
	EnvFile  string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   console.FormatText,
		Strategy: model.TargetingStrategyRandom,
		EnvFile:  DefaultEnvFile,
	}
}

// LoadEnvFile loads variables from the configured env file without
// overriding ones already set. required makes a missing file an error.
func (c *Config) LoadEnvFile(required bool) error {
	if c.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", c.EnvFile, err)
	}
	return nil
}

// ApplyEnv fills every setting whose flag was not given explicitly from the
// environment
func (c *Config) ApplyEnv(changed func(flag string) bool) error {
	if v := os.Getenv(EnvOutput); v != "" && !changed("output") {
		c.Output = v
	}
	if v := os.Getenv(EnvStrategy); v != "" && !changed("strategy") {
		c.Strategy = v
	}
	if v := os.Getenv(EnvSeed); v != "" && !changed("seed") {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvVerbose); v != "" && !changed("verbose") {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks settings that cannot be checked by flag parsing
func (c *Config) Validate() error {
	switch c.Output {
	case console.FormatText, console.FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return nil
}

// NewLogger creates the JSON logger for the configured verbosity
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
