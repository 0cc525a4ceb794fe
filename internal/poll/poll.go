// Package poll implements a fixed-interval status watcher for generation
// jobs. Status is pull-only: there is no push channel, so clients poll the
// status surface until the job reaches a terminal state.
package poll

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sitegen/internal/model"
)

// ErrBudgetExhausted means too many consecutive polls failed before the job
// reached a terminal state.
var ErrBudgetExhausted = eris.New("poll: failure budget exhausted")

// Fetcher retrieves the current job snapshot for a business id.
type Fetcher interface {
	Fetch(ctx context.Context, businessID string) (*model.GenerationJob, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, businessID string) (*model.GenerationJob, error)

func (f FetcherFunc) Fetch(ctx context.Context, businessID string) (*model.GenerationJob, error) {
	return f(ctx, businessID)
}

// Poller repeatedly fetches a job's status until it terminates. Zero-value
// Interval and Budget fall back to 2s and 30.
type Poller struct {
	Fetcher  Fetcher
	Interval time.Duration
	Budget   int

	// OnUpdate, when set, is called for every stage transition observed,
	// including the terminal one.
	OnUpdate func(job *model.GenerationJob)
}

const (
	defaultInterval = 2 * time.Second
	defaultBudget   = 30
)

// Wait polls at a fixed interval until the job reaches completed or failed
// and returns the terminal snapshot. Consecutive fetch failures count
// against the budget; a successful fetch resets it. Context cancellation
// returns ctx.Err().
func (p *Poller) Wait(ctx context.Context, businessID string) (*model.GenerationJob, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	budget := p.Budget
	if budget <= 0 {
		budget = defaultBudget
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		failures int
		lastSeen model.JobStatus
	)
	for {
		job, err := p.Fetcher.Fetch(ctx, businessID)
		if err != nil {
			failures++
			if failures >= budget {
				return nil, eris.Wrapf(ErrBudgetExhausted, "poll: business %s after %d failures", businessID, failures)
			}
		} else {
			failures = 0
			if job.Status != lastSeen {
				lastSeen = job.Status
				if p.OnUpdate != nil {
					p.OnUpdate(job)
				}
			}
			if job.Status.Terminal() {
				return job, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// HTTPFetcher fetches job status from the serve surface.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (h *HTTPFetcher) Fetch(ctx context.Context, businessID string) (*model.GenerationJob, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/api/businesses/%s/status", h.BaseURL, businessID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "poll: build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "poll: fetch status")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("poll: status endpoint returned %d", resp.StatusCode)
	}

	var job model.GenerationJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, eris.Wrap(err, "poll: decode status")
	}
	return &job, nil
}
