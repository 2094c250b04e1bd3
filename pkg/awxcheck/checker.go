package awxcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/telekom/cfctl/pkg/awx"
)

const (
	// DefaultJobLimit is the number of recent jobs whose labels are inspected.
	DefaultJobLimit = 3

	createdLayoutLen = len("2006-01-02T15:04:05")
	unknownCreated   = "Unknown"
	noTags           = "None"
)

type LabelFinder interface {
	FindByName(ctx context.Context, name string) (*awx.Label, error)
}

type JobLister interface {
	ListRecent(ctx context.Context, pageSize int) ([]awx.Job, error)
	Labels(ctx context.Context, jobID int) ([]awx.Label, error)
}

type TemplateGetter interface {
	Get(ctx context.Context, id int) (*awx.JobTemplate, error)
}

type Checker struct {
	labels    LabelFinder
	jobs      JobLister
	templates TemplateGetter
}

func New(labels LabelFinder, jobs JobLister, templates TemplateGetter) *Checker {
	return &Checker{labels: labels, jobs: jobs, templates: templates}
}

// NewFromClient wires a Checker to the services of an AWX client.
func NewFromClient(c *awx.Client) *Checker {
	return New(c.Labels(), c.Jobs(), c.JobTemplates())
}

type LabelCheck struct {
	Action  awx.Action `json:"action" yaml:"action"`
	Found   bool       `json:"found" yaml:"found"`
	LabelID int        `json:"labelID,omitempty" yaml:"labelID,omitempty"`
	Error   string     `json:"error,omitempty" yaml:"error,omitempty"`
}

type JobLabels struct {
	ID     int      `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Status string   `json:"status" yaml:"status"`
	Labels []string `json:"labels" yaml:"labels"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

type TemplateTagConfig struct {
	ID              int    `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	AskTagsOnLaunch bool   `json:"askTagsOnLaunch" yaml:"askTagsOnLaunch"`
	JobTags         string `json:"jobTags" yaml:"jobTags"`
}

type JobTagSummary struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Status  string `json:"status" yaml:"status"`
	Tags    string `json:"tags" yaml:"tags"`
	Created string `json:"created" yaml:"created"`
}

// ActionLabels looks up the label of every action. A failed lookup is
// recorded on its entry and does not stop the remaining lookups.
func (c *Checker) ActionLabels(ctx context.Context, actions []awx.Action) []LabelCheck {
	if len(actions) == 0 {
		actions = awx.Actions()
	}
	checks := make([]LabelCheck, 0, len(actions))
	for _, action := range actions {
		check := LabelCheck{Action: action}
		label, err := c.labels.FindByName(ctx, string(action))
		switch {
		case errors.Is(err, awx.ErrNotFound):
		case err != nil:
			check.Error = err.Error()
		default:
			check.Found = true
			check.LabelID = label.ID
		}
		checks = append(checks, check)
	}
	return checks
}

// JobLabels lists the labels of the first limit recent jobs.
func (c *Checker) JobLabels(ctx context.Context, limit int) ([]JobLabels, error) {
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	jobs, err := c.jobs.ListRecent(ctx, awx.DefaultRecentJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	result := make([]JobLabels, 0, len(jobs))
	for _, job := range jobs {
		entry := JobLabels{ID: job.ID, Name: job.Name, Status: job.Status, Labels: []string{}}
		labels, err := c.jobs.Labels(ctx, job.ID)
		if err != nil {
			entry.Error = err.Error()
		}
		for _, l := range labels {
			entry.Labels = append(entry.Labels, l.Name)
		}
		result = append(result, entry)
	}
	return result, nil
}

func (c *Checker) TemplateTags(ctx context.Context, templateID int) (*TemplateTagConfig, error) {
	tmpl, err := c.templates.Get(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job template %d: %w", templateID, err)
	}
	return &TemplateTagConfig{
		ID:              tmpl.ID,
		Name:            tmpl.Name,
		AskTagsOnLaunch: tmpl.AskTagsOnLaunch,
		JobTags:         tmpl.JobTags,
	}, nil
}

// RecentJobTags summarizes the tags of recent jobs. The creation time is cut
// to second precision.
func (c *Checker) RecentJobTags(ctx context.Context, pageSize int) ([]JobTagSummary, error) {
	jobs, err := c.jobs.ListRecent(ctx, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	result := make([]JobTagSummary, 0, len(jobs))
	for _, job := range jobs {
		result = append(result, JobTagSummary{
			ID:      job.ID,
			Name:    job.Name,
			Status:  job.Status,
			Tags:    orDefault(strings.TrimSpace(job.JobTags), noTags),
			Created: shortCreated(job.Created),
		})
	}
	return result, nil
}

func shortCreated(created string) string {
	if created == "" {
		return unknownCreated
	}
	if len(created) > createdLayoutLen {
		return created[:createdLayoutLen]
	}
	return created
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
