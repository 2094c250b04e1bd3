package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/awx"
	"github.com/telekom/cfctl/pkg/awxcheck"
	"github.com/telekom/cfctl/pkg/cfctl/output"
)

func NewAWXCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "awx",
		Short: "Inspect AWX labels, job tags and templates of the Cloudflare workflow",
	}

	cmd.AddCommand(
		newAWXLabelsCommand(),
		newAWXJobsCommand(),
		newAWXJobTagsCommand(),
		newAWXTemplateCommand(),
		newAWXTagsCommand(),
	)
	return cmd
}

func newAWXLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "labels [ACTION...]",
		Short:     "Check that the action labels exist in AWX",
		ValidArgs: actionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			actions := make([]awx.Action, 0, len(args))
			for _, arg := range args {
				a, err := awx.ParseAction(arg)
				if err != nil {
					return err
				}
				actions = append(actions, a)
			}
			checker, err := buildChecker(rt)
			if err != nil {
				return err
			}

			checks := checker.ActionLabels(cmd.Context(), actions)
			if err := rt.writeResult(checks, func(w io.Writer) {
				output.WriteLabelCheckTable(w, checks)
			}); err != nil {
				return err
			}
			failed := 0
			for _, c := range checks {
				if c.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d label lookups failed", failed, len(checks))
			}
			return nil
		},
	}
}

func newAWXJobsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Show the labels of recent jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			checker, err := buildChecker(rt)
			if err != nil {
				return err
			}
			jobs, err := checker.JobLabels(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return rt.writeResult(jobs, func(w io.Writer) {
				output.WriteJobLabelsTable(w, jobs)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", awxcheck.DefaultJobLimit, "Number of recent jobs to inspect")
	return cmd
}

func newAWXJobTagsCommand() *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "job-tags",
		Short: "Show the tags of recent jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			checker, err := buildChecker(rt)
			if err != nil {
				return err
			}
			jobs, err := checker.RecentJobTags(cmd.Context(), pageSize)
			if err != nil {
				return err
			}
			return rt.writeResult(jobs, func(w io.Writer) {
				output.WriteJobTagsTable(w, jobs)
			})
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", awx.DefaultRecentJobs, "Number of recent jobs to list")
	return cmd
}

func newAWXTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template [ID]",
		Short: "Show the tag configuration of a job template",
		Long:  "Show the tag configuration of a job template. Defaults to awx.job-template-id from config.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			checker, err := buildChecker(rt)
			if err != nil {
				return err
			}
			id := rt.cfg.AWX.JobTemplateID
			if len(args) == 1 {
				id, err = strconv.Atoi(args[0])
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid job template id %q", args[0])
				}
			}
			tmpl, err := checker.TemplateTags(cmd.Context(), id)
			if err != nil {
				return err
			}
			return rt.writeResult(tmpl, func(w io.Writer) {
				output.WriteTemplateTagConfig(w, tmpl)
			})
		},
	}
}

type jobTagsResult struct {
	Action awx.Action `json:"action" yaml:"action"`
	Ticket string     `json:"ticket" yaml:"ticket"`
	Tags   string     `json:"tags" yaml:"tags"`
}

func newAWXTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags ACTION [TICKET]",
		Short: "Print the job tags a workflow job is launched with",
		Example: `  cfctl awx tags CREATE ABC-123   # CLOUDFLARE,CREATE,ABC-123
  cfctl awx tags DELETE           # CLOUDFLARE,DELETE,NO-TICKET`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: actionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			ticket := ""
			if len(args) == 2 {
				ticket = args[1]
			}
			tags, err := awx.JobTags(args[0], ticket)
			if err != nil {
				return err
			}
			parts := strings.SplitN(tags, ",", 3)
			res := jobTagsResult{Action: awx.Action(parts[1]), Ticket: parts[2], Tags: tags}
			return rt.writeResult(res, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, res.Tags)
			})
		},
	}
}

func actionNames() []string {
	names := make([]string, 0, len(awx.Actions()))
	for _, a := range awx.Actions() {
		names = append(names, string(a))
	}
	return names
}
