package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen/internal/assets"
	"github.com/sells-group/sitegen/internal/model"
	"github.com/sells-group/sitegen/internal/pipeline"
	"github.com/sells-group/sitegen/internal/recommend"
	"github.com/sells-group/sitegen/internal/store"
)

type fakeScraper struct{}

func (fakeScraper) Name() string { return "fake" }

func (fakeScraper) Scrape(context.Context, string) (*model.RawSignal, error) {
	return &model.RawSignal{
		Title:       "Bloom Gardens",
		Description: "Garden design and landscaping services, trusted by hundreds of satisfied clients.",
	}, nil
}

type fakeStore struct {
	jobs map[string]*model.GenerationJob
}

func (f *fakeStore) SaveJob(_ context.Context, job *model.GenerationJob) error {
	f.jobs[job.BusinessID] = job.Clone()
	return nil
}

func (f *fakeStore) GetJob(_ context.Context, businessID string) (*model.GenerationJob, error) {
	return f.jobs[businessID].Clone(), nil
}

func (f *fakeStore) ListJobs(context.Context, store.JobFilter) ([]model.GenerationJob, error) {
	return nil, nil
}

func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog, err := recommend.LoadCatalog()
	require.NoError(t, err)

	orch := pipeline.New(
		&fakeStore{jobs: make(map[string]*model.GenerationJob)},
		fakeScraper{},
		assets.PassthroughResolver{},
		catalog,
	)
	srv := httptest.NewServer(newRouter(orch))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(
		srv.URL+"/api/businesses/biz-1/generate",
		"application/json",
		strings.NewReader(`{"source_url":"https://bloomgardens.com"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var job model.GenerationJob
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&job))
	assert.Equal(t, "biz-1", job.BusinessID)
	assert.NotEmpty(t, job.ID)

	// The job completes and the status endpoint reflects it.
	require.Eventually(t, func() bool {
		statusResp, err := http.Get(srv.URL + "/api/businesses/biz-1/status")
		if err != nil {
			return false
		}
		defer statusResp.Body.Close()
		if statusResp.StatusCode != http.StatusOK {
			return false
		}
		var current model.GenerationJob
		if err := json.NewDecoder(statusResp.Body).Decode(&current); err != nil {
			return false
		}
		return current.Status == model.JobStatusCompleted && current.TemplateID == "service-heavy"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestGenerateEndpoint_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(
		srv.URL+"/api/businesses/biz-1/generate",
		"application/json",
		strings.NewReader(`not json`),
	)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(
		srv.URL+"/api/businesses/biz-1/generate",
		"application/json",
		strings.NewReader(`{"source_url":"ftp://not-http"}`),
	)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusEndpoint_Unknown(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/businesses/ghost/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
