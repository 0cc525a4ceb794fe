package model

import "time"

// JobStatus is the current state of a generation job. Transitions are
// forward-only through the declared order; any non-terminal status may jump
// to JobStatusFailed.
type JobStatus string

const (
	JobStatusQueued          JobStatus = "queued"
	JobStatusScraping        JobStatus = "scraping"
	JobStatusAnalyzing       JobStatus = "analyzing"
	JobStatusSelecting       JobStatus = "selecting_template"
	JobStatusGenerating      JobStatus = "generating_config"
	JobStatusEnrichingImages JobStatus = "enriching_images"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusFailed          JobStatus = "failed"
)

// StageOrder is the fixed forward-only sequence a job advances through on
// the happy path.
var StageOrder = []JobStatus{
	JobStatusQueued,
	JobStatusScraping,
	JobStatusAnalyzing,
	JobStatusSelecting,
	JobStatusGenerating,
	JobStatusEnrichingImages,
	JobStatusCompleted,
}

// Terminal reports whether the status is completed or failed. Terminal jobs
// are immutable; a fresh start request replaces them.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// StageMeta is the static per-stage UX presentation: a human label and a
// progress percentage hint. The percentages are keyed by stage name, not
// measured from elapsed work.
type StageMeta struct {
	Step     string
	Message  string
	Progress int
}

var stageMeta = map[JobStatus]StageMeta{
	JobStatusQueued:          {Step: "queued", Message: "Generation queued", Progress: 5},
	JobStatusScraping:        {Step: "scraping", Message: "Collecting business signals", Progress: 20},
	JobStatusAnalyzing:       {Step: "analyzing", Message: "Synthesizing business profile", Progress: 45},
	JobStatusSelecting:       {Step: "selecting_template", Message: "Choosing the best template", Progress: 60},
	JobStatusGenerating:      {Step: "generating_config", Message: "Assembling website configuration", Progress: 75},
	JobStatusEnrichingImages: {Step: "enriching_images", Message: "Resolving image assets", Progress: 90},
	JobStatusCompleted:       {Step: "completed", Message: "Website generation complete", Progress: 100},
	JobStatusFailed:          {Step: "failed", Message: "Website generation failed", Progress: 100},
}

// MetaFor returns the static presentation for a stage. Unknown statuses get
// the queued presentation so callers always see something renderable.
func MetaFor(s JobStatus) StageMeta {
	if m, ok := stageMeta[s]; ok {
		return m
	}
	return stageMeta[JobStatusQueued]
}

// GenerationJob tracks one business's progress from raw signal to assembled
// website configuration. Keyed by BusinessID; mutated only by the single
// execution path that owns that key.
type GenerationJob struct {
	ID          string           `json:"id"`
	BusinessID  string           `json:"business_id"`
	SourceURL   string           `json:"source_url"`
	Status      JobStatus        `json:"status"`
	Step        string           `json:"step"`
	Message     string           `json:"message"`
	Progress    int              `json:"progress"`
	Profile     *BusinessProfile `json:"profile,omitempty"`
	TemplateID  string           `json:"template_id,omitempty"`
	Config      *WebsiteConfig   `json:"website_config,omitempty"`
	ImageAssets *ImageAssets     `json:"image_assets,omitempty"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// Clone returns a deep-enough copy for handing snapshots to concurrent
// readers. Nested pointers are copied; slices inside them are shared but
// never mutated after assignment.
func (j *GenerationJob) Clone() *GenerationJob {
	if j == nil {
		return nil
	}
	cp := *j
	if j.Profile != nil {
		p := *j.Profile
		cp.Profile = &p
	}
	if j.Config != nil {
		c := *j.Config
		cp.Config = &c
	}
	if j.ImageAssets != nil {
		a := *j.ImageAssets
		cp.ImageAssets = &a
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
