package awx

import (
	"context"
	"fmt"
)

type JobTemplateService struct {
	client *Client
}

func (c *Client) JobTemplates() *JobTemplateService {
	return &JobTemplateService{client: c}
}

func (s *JobTemplateService) Get(ctx context.Context, id int) (*JobTemplate, error) {
	var tmpl JobTemplate
	if err := s.client.get(ctx, fmt.Sprintf("/api/v2/job_templates/%d/", id), nil, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}
