package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/readiq/internal/assessment"
)

// timeLayout is how created_at is stored. RFC 3339 with nanoseconds
// keeps timestamps lossless through a round trip.
const timeLayout = time.RFC3339Nano

// ResultRepo persists and reads assessment records. Rows are immutable:
// there is no update path, and the only delete is the bulk removal of a
// previous synthetic batch.
type ResultRepo interface {
	// Insert stores one record.
	Insert(ctx context.Context, rec assessment.Record) error

	// BulkInsert stores each record independently, continuing past
	// per-row failures. It returns the number inserted and the joined
	// failures, if any, for the caller to log.
	BulkInsert(ctx context.Context, recs []assessment.Record) (int, error)

	// List returns all records ordered by timestamp.
	List(ctx context.Context) ([]assessment.Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)

	// DeleteSynthetic removes generator output, leaving live rows
	// untouched. Returns the number of rows removed.
	DeleteSynthetic(ctx context.Context) (int64, error)
}

type resultRepo struct {
	db *sql.DB
}

const insertResultSQL = `
INSERT INTO results (
	session_id, created_at,
	numeracy_score, reading_score, computer_score,
	logic_score, communication_score, mindset_score,
	readiness_level, readiness_title,
	client_hash, consent, synthetic
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *resultRepo) Insert(ctx context.Context, rec assessment.Record) error {
	_, err := r.db.ExecContext(ctx, insertResultSQL,
		rec.SessionID,
		rec.Timestamp.UTC().Format(timeLayout),
		rec.Scores[assessment.Numeracy],
		rec.Scores[assessment.Reading],
		rec.Scores[assessment.Computer],
		rec.Scores[assessment.Logic],
		rec.Scores[assessment.Communication],
		rec.Scores[assessment.Mindset],
		rec.ReadinessLevel,
		rec.ReadinessTitle,
		rec.ClientHash,
		rec.Consent,
		rec.Synthetic,
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", rec.SessionID, err)
	}
	return nil
}

func (r *resultRepo) BulkInsert(ctx context.Context, recs []assessment.Record) (int, error) {
	inserted := 0
	var errs []error
	for _, rec := range recs {
		if err := r.Insert(ctx, rec); err != nil {
			errs = append(errs, err)
			continue
		}
		inserted++
	}
	return inserted, errors.Join(errs...)
}

const listResultsSQL = `
SELECT session_id, created_at,
	numeracy_score, reading_score, computer_score,
	logic_score, communication_score, mindset_score,
	readiness_level, readiness_title,
	client_hash, consent, synthetic
FROM results ORDER BY created_at`

func (r *resultRepo) List(ctx context.Context) ([]assessment.Record, error) {
	rows, err := r.db.QueryContext(ctx, listResultsSQL)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []assessment.Record
	for rows.Next() {
		var rec assessment.Record
		var createdAt string
		err := rows.Scan(
			&rec.SessionID,
			&createdAt,
			&rec.Scores[assessment.Numeracy],
			&rec.Scores[assessment.Reading],
			&rec.Scores[assessment.Computer],
			&rec.Scores[assessment.Logic],
			&rec.Scores[assessment.Communication],
			&rec.Scores[assessment.Mindset],
			&rec.ReadinessLevel,
			&rec.ReadinessTitle,
			&rec.ClientHash,
			&rec.Consent,
			&rec.Synthetic,
		)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		rec.Timestamp, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (r *resultRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

func (r *resultRepo) DeleteSynthetic(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM results WHERE synthetic = 1")
	if err != nil {
		return 0, fmt.Errorf("delete synthetic results: %w", err)
	}
	return res.RowsAffected()
}
