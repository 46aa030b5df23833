package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harrison/telegram-analyzer/internal/behavior"
	"github.com/harrison/telegram-analyzer/internal/config"
	"github.com/harrison/telegram-analyzer/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultConfigHint = config.DefaultConfigFile

// session is what every subcommand needs to run behaviors.
type session struct {
	cfg   *config.Config
	env   behavior.Env
	log   *logger.ConsoleLogger
	runID string
}

// newSession resolves configuration (flags > environment > file > defaults)
// and wires the filesystem, stdout and a stderr logger. Nothing is read or
// written besides the config and .env files.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(config.DefaultEnvFile); err != nil {
		return nil, err
	}

	cfg.MergeWithFlags(changedString(cmd, "log-level"), changedString(cmd, "output"), changedString(cmd, "format"))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	s := &session{
		cfg: cfg,
		env: behavior.Env{
			Fs:  afero.NewOsFs(),
			Out: cmd.OutOrStdout(),
			Log: log,
		},
		log:   log,
		runID: uuid.New().String(),
	}
	log.LogDebug(fmt.Sprintf("run %s: log_level=%s format=%s output_dir=%q", s.runID, cfg.LogLevel, cfg.Format, cfg.OutputDir))
	return s, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// changedString returns the flag's value when it was set on the command
// line, or nil when it was not given or is not defined for cmd.
func changedString(cmd *cobra.Command, name string) *string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	value := flag.Value.String()
	return &value
}
