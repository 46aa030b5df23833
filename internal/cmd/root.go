package cmd

import (
	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for telegram-analyzer
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram-analyzer",
		Short: "Analyze exported Telegram chats, folders and files",
		Long: `telegram-analyzer runs analyses ("behaviors") over exported chat logs.

Each analysis is a subcommand. The all and group commands run several
analyses in sequence and stop at the first one that fails.

Analysis output goes to stdout; progress logs go to stderr.
Configuration is loaded from .telegram-analyzer.yaml and TGA_* environment
variables (a .env file is honored). CLI flags override both.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: "+defaultConfigHint+")")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(newJSONCommand(models.TypeURL, "extract-urls", "Extract URLs from a JSON export and print each one"))
	cmd.AddCommand(newReportCommand(models.TypeURLCount, "count-urls",
		"Print every URL in a text file with the number of times it appears"))
	cmd.AddCommand(newReportCommand(models.TypeTimeSlot, "count-time-slots",
		"Count JSON messages per 30-minute slot of the day (UTC)"))
	cmd.AddCommand(newJSONCommand(models.TypeDaily, "count-daily", "Count JSON messages per day (UTC)"))
	cmd.AddCommand(newListExtensionsCommand())
	cmd.AddCommand(newPathCommand(models.TypeFileMetadata, "file-metadata", "file",
		"Print name, extension, format, size and modification time of a file"))
	cmd.AddCommand(newJSONCommand(models.TypeUserInteractions, "user-interactions", "Summarize the interactions of each user"))
	cmd.AddCommand(newJSONCommand(models.TypeMessageStats, "message-stats", "Count messages and distinct senders"))
	cmd.AddCommand(newJSONCommand(models.TypeDiffusion, "diffusion", "Show which users shared which media and links"))
	cmd.AddCommand(newJSONCommand(models.TypeShares, "shares", "Show who sent which link and which media"))
	cmd.AddCommand(newJSONCommand(models.TypeTextStats, "text-stats", "Compute word, sentence and reading-time statistics"))
	cmd.AddCommand(NewAllCommand())
	cmd.AddCommand(NewGroupCommand())

	return cmd
}
