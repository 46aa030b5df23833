package cmd

import (
	"fmt"
	"strings"

	"github.com/harrison/telegram-analyzer/internal/behavior"
	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/cobra"
)

// NewAllCommand creates the all command, which runs every analysis
func NewAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all --json <path> --folder <path> --file <path>",
		Short: "Run every analysis in sequence",
		Long: `Run every analysis in declared order, stopping at the first failure.

JSON-based analyses read --json (count-urls reads it as plain text),
list-extensions reads --folder and file-metadata reads --file.
Reports are printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, "all", nil)
		},
		SilenceUsage: true,
	}

	addPathFlags(cmd)
	_ = cmd.MarkFlagRequired("json")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// NewGroupCommand creates the group command, which runs the analyses of one type
func NewGroupCommand() *cobra.Command {
	types := models.AllBehaviorTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}

	cmd := &cobra.Command{
		Use:   "group <type> [--json <path>] [--folder <path>] [--file <path>]",
		Short: "Run all analyses of one type",
		Long: `Run every analysis whose type matches <type>, stopping at the first failure.

Only the path the selected analyses read is required.

Types: ` + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := models.ParseBehaviorType(args[0])
			if err != nil {
				return err
			}
			return runBatch(cmd, "group "+t.String(), &t)
		},
		SilenceUsage: true,
	}

	addPathFlags(cmd)
	return cmd
}

func addPathFlags(cmd *cobra.Command) {
	cmd.Flags().String("json", "", "Path to the exported chat JSON")
	cmd.Flags().String("folder", "", "Path to the folder to scan")
	cmd.Flags().String("file", "", "Path to the single file to inspect")
}

func pathsFromFlags(cmd *cobra.Command) behavior.Paths {
	jsonPath, _ := cmd.Flags().GetString("json")
	folder, _ := cmd.Flags().GetString("folder")
	file, _ := cmd.Flags().GetString("file")
	return behavior.Paths{JSON: jsonPath, Folder: folder, File: file}
}

// flagForKind names the flag supplying inputs of kind.
func flagForKind(kind models.InputKind) string {
	switch kind {
	case models.InputFolder:
		return "folder"
	case models.InputFile:
		return "file"
	default:
		return "json"
	}
}

// runBatch builds all behaviors, keeps those of type group when it is set,
// and runs them fail-fast. A group whose input path is missing is rejected
// before anything runs.
func runBatch(cmd *cobra.Command, mode string, group *models.BehaviorType) error {
	paths := pathsFromFlags(cmd)
	if group != nil {
		kind := models.InputKindOf(*group)
		if paths.For(kind) == "" {
			return fmt.Errorf("group %s requires --%s", *group, flagForKind(kind))
		}
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	behaviors, err := behavior.All(paths, s.env)
	if err != nil {
		return err
	}
	if group != nil {
		behaviors = behavior.Group(*group, behaviors)
	}

	_, err = behavior.RunBatch(s.runID, mode, behaviors, s.log)
	return err
}
