package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
// when --config is not given.
const DefaultConfigFile = ".telegram-analyzer.yaml"

// DefaultEnvFile is the dotenv file loaded before reading TGA_* variables.
const DefaultEnvFile = ".env"

// Environment variables overriding the config file.
const (
	EnvLogLevel  = "TGA_LOG_LEVEL"
	EnvOutputDir = "TGA_OUTPUT_DIR"
	EnvFormat    = "TGA_FORMAT"
)

// Config represents telegram-analyzer configuration options
type Config struct {
	// LogLevel controls logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error"`

	// OutputDir is the directory receiving txt and csv reports
	OutputDir string `yaml:"output_dir"`

	// Format is the default report format for count-urls and count-time-slots
	Format string `yaml:"format"`
}

var validate = validator.New()

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "",
		Format:    string(display.FormatConsole),
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-empty values from file (merging with defaults)
	cfg.merge(fileCfg.LogLevel, fileCfg.OutputDir, fileCfg.Format)
	return cfg, nil
}

// LoadConfigFromDir loads DefaultConfigFile from the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// ApplyEnv loads envFile into the process environment when it exists, then
// overrides the configuration with any non-empty TGA_* variables. Variables
// already set in the environment win over the dotenv file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	c.merge(os.Getenv(EnvLogLevel), os.Getenv(EnvOutputDir), os.Getenv(EnvFormat))
	return nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel, outputDir, format *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if outputDir != nil {
		c.OutputDir = *outputDir
	}
	if format != nil {
		c.Format = *format
	}
}

func (c *Config) merge(logLevel, outputDir, format string) {
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if outputDir != "" {
		c.OutputDir = outputDir
	}
	if format != "" {
		c.Format = format
	}
}

// Validate validates the configuration values and normalizes Format.
// The output directory is checked by the renderer, since only the
// format-aware commands need one.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	format, err := display.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(format)
	return nil
}

// RenderOptions returns the report options described by the configuration.
func (c *Config) RenderOptions() display.RenderOptions {
	return display.RenderOptions{
		Format:    display.Format(c.Format),
		OutputDir: c.OutputDir,
	}
}
