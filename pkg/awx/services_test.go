package awx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(WithServer(server.URL), WithBasicAuth("admin", "admin"))
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestLabelsFindByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/labels/", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Query().Get("name") {
		case "CREATE-DOMAIN":
			writeJSON(w, Page[Label]{Count: 1, Results: []Label{{ID: 7, Name: "CREATE-DOMAIN"}}})
		default:
			writeJSON(w, Page[Label]{Results: []Label{}})
		}
	})

	label, err := client.Labels().FindByName(context.Background(), "CREATE-DOMAIN")
	require.NoError(t, err)
	assert.Equal(t, 7, label.ID)
	assert.Equal(t, "CREATE-DOMAIN", label.Name)

	_, err = client.Labels().FindByName(context.Background(), "CLONE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobsListRecent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/jobs/", r.URL.Path)
		require.Equal(t, "-created", r.URL.Query().Get("order_by"))
		require.Equal(t, "5", r.URL.Query().Get("page_size"))

		writeJSON(w, Page[Job]{Count: 2, Results: []Job{
			{ID: 42, Name: "cloudflare-dns", Status: "successful", JobTags: "CLOUDFLARE,CREATE,ABC-123", Created: "2025-01-02T03:04:05.678901Z"},
			{ID: 41, Name: "cloudflare-dns", Status: "failed"},
		}})
	})

	jobs, err := client.Jobs().ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, 42, jobs[0].ID)
	assert.Equal(t, "CLOUDFLARE,CREATE,ABC-123", jobs[0].JobTags)
	assert.Empty(t, jobs[1].JobTags)
}

func TestJobsLabels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/jobs/42/labels/", r.URL.Path)
		writeJSON(w, Page[Label]{Results: []Label{{ID: 1, Name: "CREATE"}, {ID: 9, Name: "CLOUDFLARE"}}})
	})

	labels, err := client.Jobs().Labels(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "CREATE", labels[0].Name)
}

func TestJobTemplatesGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/job_templates/21/" {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]string{"detail": "Not found."})
			return
		}
		writeJSON(w, JobTemplate{ID: 21, Name: "Cloudflare DNS", AskTagsOnLaunch: true, JobTags: "CLOUDFLARE"})
	})

	tmpl, err := client.JobTemplates().Get(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, "Cloudflare DNS", tmpl.Name)
	assert.True(t, tmpl.AskTagsOnLaunch)

	_, err = client.JobTemplates().Get(context.Background(), 99)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "Not found.", httpErr.Message)
}
