package poll

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen/internal/model"
)

// sequenceFetcher replays a scripted series of snapshots and errors.
type sequenceFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	idx     int
}

type fetchResult struct {
	job *model.GenerationJob
	err error
}

func (s *sequenceFetcher) Fetch(_ context.Context, _ string) (*model.GenerationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[s.idx]
	if s.idx < len(s.results)-1 {
		s.idx++
	}
	return r.job, r.err
}

func jobAt(status model.JobStatus) *model.GenerationJob {
	meta := model.MetaFor(status)
	return &model.GenerationJob{
		BusinessID: "biz-1",
		Status:     status,
		Step:       meta.Step,
		Message:    meta.Message,
		Progress:   meta.Progress,
	}
}

func TestPoller_WaitUntilTerminal(t *testing.T) {
	fetcher := &sequenceFetcher{results: []fetchResult{
		{job: jobAt(model.JobStatusQueued)},
		{job: jobAt(model.JobStatusScraping)},
		{job: jobAt(model.JobStatusAnalyzing)},
		{job: jobAt(model.JobStatusCompleted)},
	}}

	var seen []model.JobStatus
	poller := &Poller{
		Fetcher:  fetcher,
		Interval: time.Millisecond,
		OnUpdate: func(job *model.GenerationJob) {
			seen = append(seen, job.Status)
		},
	}

	job, err := poller.Wait(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, []model.JobStatus{
		model.JobStatusQueued,
		model.JobStatusScraping,
		model.JobStatusAnalyzing,
		model.JobStatusCompleted,
	}, seen)
}

func TestPoller_TerminalOnFirstPoll(t *testing.T) {
	fetcher := &sequenceFetcher{results: []fetchResult{
		{job: jobAt(model.JobStatusFailed)},
	}}
	poller := &Poller{Fetcher: fetcher, Interval: time.Millisecond}

	job, err := poller.Wait(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusFailed, job.Status)
}

func TestPoller_BudgetExhausted(t *testing.T) {
	fetcher := &sequenceFetcher{results: []fetchResult{
		{err: eris.New("connection refused")},
	}}
	poller := &Poller{Fetcher: fetcher, Interval: time.Millisecond, Budget: 3}

	_, err := poller.Wait(context.Background(), "biz-1")
	assert.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestPoller_SuccessResetsBudget(t *testing.T) {
	fetcher := &sequenceFetcher{results: []fetchResult{
		{err: eris.New("blip")},
		{job: jobAt(model.JobStatusScraping)},
		{err: eris.New("blip")},
		{err: eris.New("blip")},
		{job: jobAt(model.JobStatusCompleted)},
	}}
	poller := &Poller{Fetcher: fetcher, Interval: time.Millisecond, Budget: 3}

	job, err := poller.Wait(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
}

func TestPoller_ContextCancellation(t *testing.T) {
	fetcher := &sequenceFetcher{results: []fetchResult{
		{job: jobAt(model.JobStatusScraping)},
	}}
	poller := &Poller{Fetcher: fetcher, Interval: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := poller.Wait(ctx, "biz-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/businesses/biz-1/status", r.URL.Path)
		json.NewEncoder(w).Encode(jobAt(model.JobStatusAnalyzing))
	}))
	defer srv.Close()

	fetcher := &HTTPFetcher{BaseURL: srv.URL}
	job, err := fetcher.Fetch(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusAnalyzing, job.Status)
}

func TestHTTPFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := &HTTPFetcher{BaseURL: srv.URL}
	_, err := fetcher.Fetch(context.Background(), "biz-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
