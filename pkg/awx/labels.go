package awx

import (
	"context"
	"fmt"
)

type LabelService struct {
	client *Client
}

func (c *Client) Labels() *LabelService {
	return &LabelService{client: c}
}

// FindByName returns the first label named name.
func (l *LabelService) FindByName(ctx context.Context, name string) (*Label, error) {
	var page Page[Label]
	if err := l.client.get(ctx, "/api/v2/labels/", map[string]string{"name": name}, &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, fmt.Errorf("label %s: %w", name, ErrNotFound)
	}
	return &page.Results[0], nil
}
