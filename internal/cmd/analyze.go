package cmd

import (
	"fmt"

	"github.com/harrison/telegram-analyzer/internal/behavior"
	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/cobra"
)

// newJSONCommand creates a subcommand running one behavior over --json.
func newJSONCommand(t models.BehaviorType, name, short string) *cobra.Command {
	return newPathCommand(t, name, "json", short)
}

// newPathCommand creates a subcommand running one behavior over the path
// given by the required flag pathFlag. Output always goes to the console.
func newPathCommand(t models.BehaviorType, name, pathFlag, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s --%s <path>", name, pathFlag),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(pathFlag)
			return runSingle(cmd, t, path, false)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String(pathFlag, "", fmt.Sprintf("Path to the input %s", pathFlag))
	_ = cmd.MarkFlagRequired(pathFlag)
	return cmd
}

// newReportCommand creates a subcommand for a format-aware behavior reading
// --input and writing to the console or to --output in --format.
func newReportCommand(t models.BehaviorType, name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " --input <path> [--output <dir>] [--format console|txt|csv]",
		Short: short,
		Long: short + `.

Without --format the report is printed to stdout. The txt and csv formats
write a file into --output, creating the directory if needed; asking for
one of them without --output fails before anything is read or written.

Examples:
  telegram-analyzer ` + name + ` --input result.json
  telegram-analyzer ` + name + ` --input result.json --format csv --output reports/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("input")
			return runSingle(cmd, t, path, true)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("input", "", "Path to the input file")
	cmd.Flags().String("output", "", "Directory receiving txt or csv reports")
	cmd.Flags().String("format", "", "Output format: console (or stdout), txt, csv")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// newListExtensionsCommand creates the list-extensions subcommand, which adds
// a depth limit to the usual --folder flag.
func newListExtensionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-extensions --folder <path> [--max-depth <n>]",
		Short: "Count the files of a folder by extension",
		Long: `Count the files of a folder by extension, most frequent first.

Hidden directories and dependency folders (node_modules, __pycache__,
vendor) are skipped. --max-depth 1 scans only the folder itself; 0 means
no limit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("folder")
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			if maxDepth < 0 {
				return fmt.Errorf("%w: --max-depth must not be negative, got %d", behavior.ErrValidation, maxDepth)
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			return s.run(behavior.NewListExtensions(path, maxDepth, s.env))
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("folder", "", "Path to the input folder")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth to scan (0 = unlimited)")
	_ = cmd.MarkFlagRequired("folder")
	return cmd
}

// runSingle builds and runs exactly one behavior. Only format-aware
// behaviors take the configured render options; the rest print to the console.
func runSingle(cmd *cobra.Command, t models.BehaviorType, path string, formatAware bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts := display.RenderOptions{Format: display.FormatConsole}
	if formatAware {
		opts = s.cfg.RenderOptions()
	}

	b, err := behavior.New(t, path, opts, s.env)
	if err != nil {
		return err
	}
	return s.run(b)
}

// run runs b, prefixing any failure with the behavior name.
func (s *session) run(b behavior.Behavior) error {
	s.log.LogDebug(fmt.Sprintf("run %s: running %s on %s", s.runID, b.Name(), b.Input()))
	if err := b.Run(); err != nil {
		return fmt.Errorf("%s: %w", b.Name(), err)
	}
	return nil
}
