package awx

import (
	"context"
	"fmt"
	"strconv"
)

// DefaultRecentJobs is the page size used when listing recent jobs.
const DefaultRecentJobs = 5

type JobService struct {
	client *Client
}

func (c *Client) Jobs() *JobService {
	return &JobService{client: c}
}

// ListRecent returns up to pageSize jobs, newest first.
func (j *JobService) ListRecent(ctx context.Context, pageSize int) ([]Job, error) {
	if pageSize <= 0 {
		pageSize = DefaultRecentJobs
	}
	var page Page[Job]
	query := map[string]string{
		"page_size": strconv.Itoa(pageSize),
		"order_by":  "-created",
	}
	if err := j.client.get(ctx, "/api/v2/jobs/", query, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Labels returns the labels attached to a job.
func (j *JobService) Labels(ctx context.Context, jobID int) ([]Label, error) {
	var page Page[Label]
	if err := j.client.get(ctx, fmt.Sprintf("/api/v2/jobs/%d/labels/", jobID), nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
