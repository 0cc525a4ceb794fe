package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/sitegen/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS generation_jobs (
	business_id  TEXT PRIMARY KEY,
	job_id       TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'queued',
	snapshot     TEXT NOT NULL,
	started_at   DATETIME NOT NULL,
	completed_at DATETIME,
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_generation_jobs_status ON generation_jobs(status);
CREATE INDEX IF NOT EXISTS idx_generation_jobs_started ON generation_jobs(started_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveJob(ctx context.Context, job *model.GenerationJob) error {
	snapshot, err := json.Marshal(job)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal job")
	}

	var completedAt any
	if job.CompletedAt != nil {
		completedAt = job.CompletedAt.UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO generation_jobs (business_id, job_id, status, snapshot, started_at, completed_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(business_id) DO UPDATE SET
			job_id = excluded.job_id,
			status = excluded.status,
			snapshot = excluded.snapshot,
			started_at = excluded.started_at,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`,
		job.BusinessID, job.ID, string(job.Status), string(snapshot),
		job.StartedAt.UTC(), completedAt, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: save job %s", job.BusinessID)
}

func (s *SQLiteStore) GetJob(ctx context.Context, businessID string) (*model.GenerationJob, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM generation_jobs WHERE business_id = ?`,
		businessID,
	).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get job %s", businessID)
	}
	return unmarshalJob([]byte(snapshot))
}

func (s *SQLiteStore) ListJobs(ctx context.Context, filter JobFilter) ([]model.GenerationJob, error) {
	query := `SELECT snapshot FROM generation_jobs WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY started_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list jobs")
	}
	defer rows.Close()

	var jobs []model.GenerationJob
	for rows.Next() {
		var snapshot string
		if err := rows.Scan(&snapshot); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan job")
		}
		job, err := unmarshalJob([]byte(snapshot))
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, eris.Wrap(rows.Err(), "sqlite: list jobs iterate")
}

func unmarshalJob(snapshot []byte) (*model.GenerationJob, error) {
	var job model.GenerationJob
	if err := json.Unmarshal(snapshot, &job); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal job snapshot")
	}
	return &job, nil
}
