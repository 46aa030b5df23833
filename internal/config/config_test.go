package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/telegram-analyzer/internal/display"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty", cfg.OutputDir)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `log_level: debug
output_dir: /tmp/reports
format: csv
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/reports")
	}
	if cfg.Format != "csv" {
		t.Errorf("Format = %q, want %q", cfg.Format, "csv")
	}
}

// TestLoadConfigPartialFile tests that missing keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte("output_dir: reports\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}

	if cfg.OutputDir != "reports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "reports")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want default %q", cfg.Format, "console")
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", *cfg, *DefaultConfig())
	}
}

// TestLoadConfigMalformed tests that invalid YAML is reported
func TestLoadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: [debug\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestApplyEnv tests TGA_* variables and .env loading
func TestApplyEnv(t *testing.T) {
	t.Run("variables override file values", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "warn")
		t.Setenv(EnvOutputDir, "/env/out")
		t.Setenv(EnvFormat, "")

		cfg := &Config{LogLevel: "debug", OutputDir: "/file/out", Format: "txt"}
		if err := cfg.ApplyEnv(""); err != nil {
			t.Fatalf("ApplyEnv() error = %v", err)
		}

		if cfg.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
		}
		if cfg.OutputDir != "/env/out" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/env/out")
		}
		if cfg.Format != "txt" {
			t.Errorf("Format = %q, want file value %q", cfg.Format, "txt")
		}
	})

	t.Run("dotenv file is loaded", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvOutputDir, "")
		t.Setenv(EnvFormat, "")
		// Unset so godotenv is allowed to set it; t.Setenv restores it afterwards.
		os.Unsetenv(EnvFormat)

		envFile := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envFile, []byte("TGA_FORMAT=csv\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}

		cfg := DefaultConfig()
		if err := cfg.ApplyEnv(envFile); err != nil {
			t.Fatalf("ApplyEnv() error = %v", err)
		}
		if cfg.Format != "csv" {
			t.Errorf("Format = %q, want %q", cfg.Format, "csv")
		}
	})

	t.Run("missing dotenv file is ignored", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("ApplyEnv() should ignore a missing file, got: %v", err)
		}
	})
}

// TestMergeWithFlags tests that flags take precedence over config values
func TestMergeWithFlags(t *testing.T) {
	cfg := &Config{LogLevel: "debug", OutputDir: "/file/out", Format: "txt"}

	level := "error"
	format := "csv"
	cfg.MergeWithFlags(&level, nil, &format)

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
	if cfg.OutputDir != "/file/out" {
		t.Errorf("OutputDir = %q, want unchanged %q", cfg.OutputDir, "/file/out")
	}
	if cfg.Format != "csv" {
		t.Errorf("Format = %q, want %q", cfg.Format, "csv")
	}
}

// TestValidate tests configuration validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantErr    string
		wantFormat string
	}{
		{name: "valid console", cfg: Config{LogLevel: "info", Format: "console"}, wantFormat: "console"},
		{name: "stdout alias", cfg: Config{LogLevel: "trace", Format: "stdout"}, wantFormat: "console"},
		{name: "text alias", cfg: Config{LogLevel: "warn", Format: "text"}, wantFormat: "txt"},
		{name: "file format without directory", cfg: Config{LogLevel: "info", Format: "csv"}, wantFormat: "csv"},
		{name: "bad log level", cfg: Config{LogLevel: "verbose", Format: "console"}, wantErr: "invalid log_level"},
		{name: "bad format", cfg: Config{LogLevel: "info", Format: "xml"}, wantErr: "invalid format 'xml'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error = %v", err)
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", cfg.Format, tt.wantFormat)
			}
		})
	}
}

// TestRenderOptions tests conversion to renderer options
func TestRenderOptions(t *testing.T) {
	cfg := &Config{LogLevel: "info", OutputDir: "out", Format: "txt"}
	opts := cfg.RenderOptions()

	if opts.Format != display.FormatText {
		t.Errorf("Format = %q, want %q", opts.Format, display.FormatText)
	}
	if opts.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, "out")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("expected valid options, got %v", err)
	}
}
