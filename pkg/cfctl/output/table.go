package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/telekom/cfctl/pkg/awxcheck"
	"github.com/telekom/cfctl/pkg/naming"
)

const none = "None"

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
}

func WriteLabelCheckTable(w io.Writer, checks []awxcheck.LabelCheck) {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ACTION\tLABEL_ID\tSTATUS")
	for _, c := range checks {
		id := "-"
		status := "not found"
		switch {
		case c.Error != "":
			status = "error: " + c.Error
		case c.Found:
			id = fmt.Sprintf("%d", c.LabelID)
			status = "found"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Action, id, status)
	}
	_ = tw.Flush()
}

func WriteJobLabelsTable(w io.Writer, jobs []awxcheck.JobLabels) {
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(w, "No recent jobs found")
		return
	}
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tLABELS")
	for _, j := range jobs {
		labels := none
		if len(j.Labels) > 0 {
			labels = strings.Join(j.Labels, ", ")
		}
		if j.Error != "" {
			labels = "error: " + j.Error
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", j.ID, j.Name, j.Status, labels)
	}
	_ = tw.Flush()
}

func WriteJobTagsTable(w io.Writer, jobs []awxcheck.JobTagSummary) {
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(w, "No recent jobs found")
		return
	}
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tTAGS\tCREATED")
	for _, j := range jobs {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Name, j.Status, j.Tags, j.Created)
	}
	_ = tw.Flush()
}

// WriteTemplateTagConfig writes the tag settings of a job template as key/value rows.
func WriteTemplateTagConfig(w io.Writer, cfg *awxcheck.TemplateTagConfig) {
	jobTags := cfg.JobTags
	if jobTags == "" {
		jobTags = none
	}
	tw := newTabWriter(w)
	_, _ = fmt.Fprintf(tw, "ID:\t%d\n", cfg.ID)
	_, _ = fmt.Fprintf(tw, "Template:\t%s\n", cfg.Name)
	_, _ = fmt.Fprintf(tw, "Ask tags on launch:\t%t\n", cfg.AskTagsOnLaunch)
	_, _ = fmt.Fprintf(tw, "Job tags:\t%s\n", jobTags)
	_ = tw.Flush()
}

type PatternInfo struct {
	Name    naming.Pattern `json:"name" yaml:"name"`
	Rule    string         `json:"rule" yaml:"rule"`
	Default bool           `json:"default" yaml:"default"`
}

func Patterns() []PatternInfo {
	infos := make([]PatternInfo, 0, len(naming.Patterns()))
	for _, p := range naming.Patterns() {
		infos = append(infos, PatternInfo{Name: p, Rule: p.Rule(), Default: p == naming.DefaultPattern})
	}
	return infos
}

func WritePatternTable(w io.Writer, patterns []PatternInfo) {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "PATTERN\tRULE\tDEFAULT")
	for _, p := range patterns {
		def := ""
		if p.Default {
			def = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Rule, def)
	}
	_ = tw.Flush()
}
