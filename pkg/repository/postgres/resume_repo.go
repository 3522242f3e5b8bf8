package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/smartresume/pkg/resume"
)

// ResumeRepository хранит записи анализа резюме.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_records (
	id UUID PRIMARY KEY,
	file_name TEXT NOT NULL UNIQUE,
	original_name TEXT NOT NULL,
	matched_job JSONB,
	snippet TEXT NOT NULL,
	user_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resume_records_owner_created
	ON resume_records (user_id, created_at DESC);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rec resume.Record) error {
	var matched []byte
	if rec.Matched != nil {
		b, err := json.Marshal(rec.Matched)
		if err != nil {
			return err
		}
		matched = b
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resume_records (id, file_name, original_name, matched_job, snippet, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, rec.ID, rec.FileName, rec.OriginalName, matched, rec.Snippet, rec.UserID, rec.CreatedAt, rec.UpdatedAt)
	return err
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, file_name, original_name, matched_job, snippet, user_id, created_at, updated_at
FROM resume_records WHERE user_id = $1
ORDER BY created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []resume.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) GetByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) (resume.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, file_name, original_name, matched_job, snippet, user_id, created_at, updated_at
FROM resume_records WHERE user_id = $1 AND file_name = $2
`, ownerID, fileName)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, resume.ErrNotFound
		}
		return resume.Record{}, err
	}
	return rec, nil
}

func (r *ResumeRepository) DeleteByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM resume_records WHERE user_id = $1 AND file_name = $2
`, ownerID, fileName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (resume.Record, error) {
	var rec resume.Record
	var matched []byte
	var created, updated time.Time
	if err := row.Scan(&rec.ID, &rec.FileName, &rec.OriginalName, &matched, &rec.Snippet, &rec.UserID, &created, &updated); err != nil {
		return resume.Record{}, err
	}
	if len(matched) > 0 {
		var mj resume.MatchedJob
		if err := json.Unmarshal(matched, &mj); err != nil {
			return resume.Record{}, err
		}
		rec.Matched = &mj
	}
	rec.CreatedAt = created.UTC()
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
