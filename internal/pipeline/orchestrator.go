// Package pipeline drives a generation job through its fixed stage order:
// queued → scraping → analyzing → selecting_template → generating_config →
// enriching_images → completed, with any stage able to fail terminally.
// Jobs are keyed by business id; exactly one execution path mutates a key
// while status reads run concurrently against snapshots.
package pipeline

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen/internal/assets"
	"github.com/sells-group/sitegen/internal/model"
	"github.com/sells-group/sitegen/internal/recommend"
	"github.com/sells-group/sitegen/internal/scrape"
	"github.com/sells-group/sitegen/internal/sitecfg"
	"github.com/sells-group/sitegen/internal/store"
	"github.com/sells-group/sitegen/internal/synth"
)

var (
	// ErrInvalidSourceURL rejects a start request before any job is created.
	ErrInvalidSourceURL = eris.New("pipeline: source url must be a valid http(s) url")

	// ErrMissingBusinessID rejects a start request with no key to track.
	ErrMissingBusinessID = eris.New("pipeline: business id is required")

	// ErrJobNotFound is returned by Status for unknown business ids.
	ErrJobNotFound = eris.New("pipeline: no generation job for business")
)

// Request describes one start request.
type Request struct {
	BusinessID string `json:"business_id"`
	SourceURL  string `json:"source_url"`
	// Conversational carries optional free-text answers collected from the
	// owner; it feeds the synthesizer alongside the scraped signal.
	Conversational string `json:"conversational,omitempty"`
}

// Orchestrator coordinates generation jobs. Construct with New; one
// instance serves all business ids.
type Orchestrator struct {
	store    store.Store
	scraper  scrape.Scraper
	resolver assets.Resolver
	catalog  []model.TemplateDefinition

	mu   sync.RWMutex
	jobs map[string]*model.GenerationJob
}

// New creates an Orchestrator with its collaborators and the immutable
// template catalog.
func New(st store.Store, scraper scrape.Scraper, resolver assets.Resolver, catalog []model.TemplateDefinition) *Orchestrator {
	return &Orchestrator{
		store:    st,
		scraper:  scraper,
		resolver: resolver,
		catalog:  catalog,
		jobs:     make(map[string]*model.GenerationJob),
	}
}

// Start validates the request, registers a job, and advances it through
// every stage before returning. If a non-terminal job already exists for
// the business id, its current snapshot is returned unchanged and no
// second pipeline runs; callers distinguish "already running" from "just
// started" by inspecting the snapshot's status. A terminal prior job is
// replaced by a fresh one.
func (o *Orchestrator) Start(ctx context.Context, req Request) (*model.GenerationJob, error) {
	snapshot, created, err := o.begin(ctx, req)
	if err != nil {
		return nil, err
	}
	if !created {
		return snapshot, nil
	}

	o.run(ctx, req)
	return o.Status(ctx, req.BusinessID)
}

// StartAsync registers the job like Start but advances it on a background
// goroutine, returning the queued snapshot immediately. The serve surface
// uses this so clients can begin polling right away. created reports
// whether this call began a fresh run or found one already active.
func (o *Orchestrator) StartAsync(ctx context.Context, req Request) (job *model.GenerationJob, created bool, err error) {
	snapshot, created, err := o.begin(ctx, req)
	if err != nil {
		return nil, false, err
	}
	if created {
		go o.run(context.WithoutCancel(ctx), req)
	}
	return snapshot, created, nil
}

// Status returns a non-blocking snapshot of the current job for the
// business id. Unknown ids fall back to the persisted snapshot so status
// survives process restarts; jobs never seen return ErrJobNotFound.
func (o *Orchestrator) Status(ctx context.Context, businessID string) (*model.GenerationJob, error) {
	o.mu.RLock()
	job, ok := o.jobs[businessID]
	o.mu.RUnlock()
	if ok {
		return job.Clone(), nil
	}

	persisted, err := o.store.GetJob(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, ErrJobNotFound
	}
	return persisted, nil
}

// begin validates the request and installs a fresh queued job unless a
// non-terminal one already holds the key. The returned snapshot is the
// existing job when created is false.
func (o *Orchestrator) begin(ctx context.Context, req Request) (snapshot *model.GenerationJob, created bool, err error) {
	if strings.TrimSpace(req.BusinessID) == "" {
		return nil, false, ErrMissingBusinessID
	}
	if !validSourceURL(req.SourceURL) {
		return nil, false, ErrInvalidSourceURL
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if existing, ok := o.jobs[req.BusinessID]; ok && !existing.Status.Terminal() {
		zap.L().Info("pipeline: start ignored, job already active",
			zap.String("business_id", req.BusinessID),
			zap.String("status", string(existing.Status)),
		)
		return existing.Clone(), false, nil
	}

	meta := model.MetaFor(model.JobStatusQueued)
	job := &model.GenerationJob{
		ID:         uuid.New().String(),
		BusinessID: req.BusinessID,
		SourceURL:  req.SourceURL,
		Status:     model.JobStatusQueued,
		Step:       meta.Step,
		Message:    meta.Message,
		Progress:   meta.Progress,
		StartedAt:  time.Now().UTC(),
	}
	o.jobs[req.BusinessID] = job
	o.persist(ctx, job)

	zap.L().Info("pipeline: job created",
		zap.String("business_id", req.BusinessID),
		zap.String("job_id", job.ID),
		zap.String("source_url", req.SourceURL),
	)
	return job.Clone(), true, nil
}

// run advances the job through every stage. It is the single writer for
// its business id: begin guarantees only one run exists per key until a
// terminal state is reached.
func (o *Orchestrator) run(ctx context.Context, req Request) {
	log := zap.L().With(zap.String("business_id", req.BusinessID))

	// Stage: scraping.
	o.setStage(ctx, req.BusinessID, model.JobStatusScraping, nil)
	signal, err := o.scraper.Scrape(ctx, req.SourceURL)
	if err != nil {
		log.Error("pipeline: scrape failed", zap.Error(err))
		o.fail(ctx, req.BusinessID, err)
		return
	}

	if signal.Empty() && req.Conversational == "" {
		log.Warn("pipeline: page yielded no usable signal, profile will use defaults",
			zap.String("source_url", req.SourceURL),
		)
	}

	// Stage: analyzing. Synthesis is total; it cannot fail.
	o.setStage(ctx, req.BusinessID, model.JobStatusAnalyzing, nil)
	profile := synth.Synthesize(*signal, req.Conversational)

	// Stage: selecting_template. Pure scoring; cannot fail.
	rec := recommend.Recommend(profile, o.catalog)
	o.setStage(ctx, req.BusinessID, model.JobStatusSelecting, func(job *model.GenerationJob) {
		job.Profile = &profile
		job.TemplateID = rec.Best.ID
	})

	// Stage: generating_config. Deterministic assembly.
	cfg := sitecfg.Assemble(profile, rec.Best)
	o.setStage(ctx, req.BusinessID, model.JobStatusGenerating, func(job *model.GenerationJob) {
		job.Config = &cfg
	})

	// Stage: enriching_images.
	o.setStage(ctx, req.BusinessID, model.JobStatusEnrichingImages, nil)
	resolved, err := o.resolver.Resolve(ctx, profile.Category, signal.Images)
	if err != nil {
		log.Error("pipeline: asset resolution failed", zap.Error(err))
		o.fail(ctx, req.BusinessID, err)
		return
	}

	now := time.Now().UTC()
	o.setStage(ctx, req.BusinessID, model.JobStatusCompleted, func(job *model.GenerationJob) {
		job.ImageAssets = resolved
		job.CompletedAt = &now
	})

	log.Info("pipeline: generation complete",
		zap.String("template_id", rec.Best.ID),
		zap.String("category", profile.Category),
	)
}

// setStage moves the job forward and persists the snapshot. mutate, when
// non-nil, runs under the lock after the stage fields are applied.
func (o *Orchestrator) setStage(ctx context.Context, businessID string, status model.JobStatus, mutate func(*model.GenerationJob)) {
	o.mu.Lock()
	job, ok := o.jobs[businessID]
	if !ok {
		o.mu.Unlock()
		return
	}
	meta := model.MetaFor(status)
	job.Status = status
	job.Step = meta.Step
	job.Message = meta.Message
	job.Progress = meta.Progress
	if mutate != nil {
		mutate(job)
	}
	snapshot := job.Clone()
	o.mu.Unlock()

	zap.L().Debug("pipeline: stage transition",
		zap.String("business_id", businessID),
		zap.String("status", string(status)),
		zap.Int("progress", meta.Progress),
	)
	o.persist(ctx, snapshot)
}

// fail moves the job to the terminal failed state, recording the
// collaborator's message verbatim. Failed jobs are never retried; a fresh
// start request replaces them.
func (o *Orchestrator) fail(ctx context.Context, businessID string, cause error) {
	now := time.Now().UTC()
	o.mu.Lock()
	job, ok := o.jobs[businessID]
	if !ok {
		o.mu.Unlock()
		return
	}
	meta := model.MetaFor(model.JobStatusFailed)
	job.Status = model.JobStatusFailed
	job.Step = meta.Step
	job.Message = meta.Message
	job.Progress = meta.Progress
	job.Error = cause.Error()
	job.CompletedAt = &now
	snapshot := job.Clone()
	o.mu.Unlock()

	o.persist(ctx, snapshot)
}

// persist writes the snapshot through to the store. Persistence failures
// are logged, not fatal: the in-memory job remains authoritative.
func (o *Orchestrator) persist(ctx context.Context, job *model.GenerationJob) {
	if err := o.store.SaveJob(ctx, job); err != nil {
		zap.L().Warn("pipeline: failed to persist job snapshot",
			zap.String("business_id", job.BusinessID),
			zap.Error(err),
		)
	}
}

func validSourceURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
