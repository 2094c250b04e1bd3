package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/playbook"
)

type cleanupSummary struct {
	playbook.Result `yaml:",inline"`

	File   string `json:"file" yaml:"file"`
	DryRun bool   `json:"dryRun" yaml:"dryRun"`
}

func NewCleanupCommand() *cobra.Command {
	var (
		dryRun         bool
		categorize     bool
		validate       bool
		removePatterns []string
	)

	cmd := &cobra.Command{
		Use:   "cleanup [FILE]",
		Short: "Remove debug tasks from a generated playbook",
		Long: "Remove debug tasks from a generated playbook in place. " +
			"Defaults to " + playbook.DefaultPlaybookFile + " in the current directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			path := playbook.DefaultPlaybookFile
			if len(args) == 1 {
				path = args[0]
			}

			opts := []playbook.Option{playbook.WithExtraRemovePatterns(removePatterns...)}
			if categorize {
				opts = append(opts, playbook.WithCategories())
			}
			if validate {
				opts = append(opts, playbook.WithValidation())
			}
			cleaner, err := playbook.NewCleaner(opts...)
			if err != nil {
				return err
			}

			res, err := playbook.CleanFile(path, cleaner, dryRun)
			if err != nil {
				return err
			}
			for _, name := range res.Removed {
				rt.Logger().Debugw("Removed task", "file", path, "task", name)
			}

			summary := cleanupSummary{File: path, DryRun: dryRun, Result: res}
			return rt.writeResult(summary, func(w io.Writer) {
				writeCleanupSummary(w, summary)
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be removed without writing the file")
	cmd.Flags().BoolVar(&categorize, "categorize", false, "Retitle known tasks with categorized names")
	cmd.Flags().BoolVar(&validate, "validate", false, "Refuse to write output that is not valid YAML")
	cmd.Flags().StringArrayVar(&removePatterns, "remove-pattern", nil, "Additional task name pattern (regular expression) to remove")

	return cmd
}

func writeCleanupSummary(w io.Writer, s cleanupSummary) {
	if s.DryRun {
		_, _ = fmt.Fprintf(w, "✓ Checked %s (dry run, not modified)\n", s.File)
	} else {
		_, _ = fmt.Fprintf(w, "✓ Cleaned %s\n", s.File)
	}
	if len(s.Removed) == 0 {
		_, _ = fmt.Fprintln(w, "  No debug statements found")
	} else {
		_, _ = fmt.Fprintf(w, "  Removed %d debug tasks (%d lines)\n", len(s.Removed), s.LinesDropped)
		for _, name := range s.Removed {
			_, _ = fmt.Fprintf(w, "    - %s\n", name)
		}
	}
	if len(s.Renamed) > 0 {
		_, _ = fmt.Fprintf(w, "  Retitled %d tasks\n", len(s.Renamed))
	}
}
