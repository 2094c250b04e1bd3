package awxcheck

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/cfctl/pkg/awx"
)

type fakeLabels struct {
	ids  map[string]int
	errs map[string]error
}

func (f *fakeLabels) FindByName(_ context.Context, name string) (*awx.Label, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	id, ok := f.ids[name]
	if !ok {
		return nil, fmt.Errorf("label %s: %w", name, awx.ErrNotFound)
	}
	return &awx.Label{ID: id, Name: name}, nil
}

type fakeJobs struct {
	jobs         []awx.Job
	listErr      error
	labels       map[int][]awx.Label
	labelErrs    map[int]error
	lastPageSize int
}

func (f *fakeJobs) ListRecent(_ context.Context, pageSize int) ([]awx.Job, error) {
	f.lastPageSize = pageSize
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.jobs, nil
}

func (f *fakeJobs) Labels(_ context.Context, jobID int) ([]awx.Label, error) {
	if err, ok := f.labelErrs[jobID]; ok {
		return nil, err
	}
	return f.labels[jobID], nil
}

type fakeTemplates struct {
	templates map[int]awx.JobTemplate
}

func (f *fakeTemplates) Get(_ context.Context, id int) (*awx.JobTemplate, error) {
	tmpl, ok := f.templates[id]
	if !ok {
		return nil, &awx.HTTPError{StatusCode: 404, Message: "Not found."}
	}
	return &tmpl, nil
}

func TestActionLabels(t *testing.T) {
	labels := &fakeLabels{
		ids:  map[string]int{"CREATE": 1, "UPDATE": 2, "CREATE-DOMAIN": 5},
		errs: map[string]error{"CLONE": errors.New("connection refused")},
	}
	checker := New(labels, &fakeJobs{}, &fakeTemplates{})

	checks := checker.ActionLabels(context.Background(), nil)
	require.Len(t, checks, 5)

	assert.Equal(t, LabelCheck{Action: awx.ActionCreate, Found: true, LabelID: 1}, checks[0])
	assert.Equal(t, LabelCheck{Action: awx.ActionUpdate, Found: true, LabelID: 2}, checks[1])
	assert.Equal(t, LabelCheck{Action: awx.ActionDelete}, checks[2])
	assert.Equal(t, awx.ActionClone, checks[3].Action)
	assert.False(t, checks[3].Found)
	assert.Equal(t, "connection refused", checks[3].Error)
	assert.Equal(t, LabelCheck{Action: awx.ActionCreateDomain, Found: true, LabelID: 5}, checks[4])
}

func TestActionLabelsSubset(t *testing.T) {
	checker := New(&fakeLabels{ids: map[string]int{"DELETE": 3}}, &fakeJobs{}, &fakeTemplates{})

	checks := checker.ActionLabels(context.Background(), []awx.Action{awx.ActionDelete})
	require.Len(t, checks, 1)
	assert.True(t, checks[0].Found)
	assert.Equal(t, 3, checks[0].LabelID)
}

func TestJobLabels(t *testing.T) {
	jobs := &fakeJobs{
		jobs: []awx.Job{
			{ID: 10, Name: "dns create", Status: "successful"},
			{ID: 9, Name: "dns update", Status: "failed"},
			{ID: 8, Name: "dns delete", Status: "running"},
			{ID: 7, Name: "dns clone", Status: "successful"},
		},
		labels: map[int][]awx.Label{
			10: {{ID: 1, Name: "CREATE"}, {ID: 9, Name: "CLOUDFLARE"}},
			8:  {{ID: 3, Name: "DELETE"}},
		},
		labelErrs: map[int]error{9: errors.New("boom")},
	}
	checker := New(&fakeLabels{}, jobs, &fakeTemplates{})

	result, err := checker.JobLabels(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, awx.DefaultRecentJobs, jobs.lastPageSize)
	require.Len(t, result, DefaultJobLimit)

	assert.Equal(t, []string{"CREATE", "CLOUDFLARE"}, result[0].Labels)
	assert.Empty(t, result[0].Error)
	assert.Equal(t, "boom", result[1].Error)
	assert.Empty(t, result[1].Labels)
	assert.Equal(t, "running", result[2].Status)
	assert.Equal(t, []string{"DELETE"}, result[2].Labels)
}

func TestJobLabelsListError(t *testing.T) {
	checker := New(&fakeLabels{}, &fakeJobs{listErr: errors.New("unauthorized")}, &fakeTemplates{})

	_, err := checker.JobLabels(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestTemplateTags(t *testing.T) {
	templates := &fakeTemplates{templates: map[int]awx.JobTemplate{
		21: {ID: 21, Name: "Cloudflare DNS", AskTagsOnLaunch: true, JobTags: "CLOUDFLARE"},
	}}
	checker := New(&fakeLabels{}, &fakeJobs{}, templates)

	cfg, err := checker.TemplateTags(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, &TemplateTagConfig{ID: 21, Name: "Cloudflare DNS", AskTagsOnLaunch: true, JobTags: "CLOUDFLARE"}, cfg)

	_, err = checker.TemplateTags(context.Background(), 22)
	var httpErr *awx.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.StatusCode)
}

func TestRecentJobTags(t *testing.T) {
	jobs := &fakeJobs{jobs: []awx.Job{
		{ID: 42, Name: "dns", Status: "successful", JobTags: "CLOUDFLARE,CREATE,ABC-123", Created: "2025-01-02T03:04:05.678901Z"},
		{ID: 41, Name: "dns", Status: "failed"},
		{ID: 40, Name: "dns", Status: "successful", JobTags: " ", Created: "2025-01-02"},
	}}
	checker := New(&fakeLabels{}, jobs, &fakeTemplates{})

	result, err := checker.RecentJobTags(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, jobs.lastPageSize)
	require.Len(t, result, 3)

	assert.Equal(t, "CLOUDFLARE,CREATE,ABC-123", result[0].Tags)
	assert.Equal(t, "2025-01-02T03:04:05", result[0].Created)
	assert.Equal(t, "None", result[1].Tags)
	assert.Equal(t, "Unknown", result[1].Created)
	assert.Equal(t, "None", result[2].Tags)
	assert.Equal(t, "2025-01-02", result[2].Created)
}
