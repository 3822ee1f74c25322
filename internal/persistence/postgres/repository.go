// Package postgres provides pgx-backed persistence for workout records.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/ftracker/internal/domain"
	"example.com/ftracker/internal/observability"
)

// Repository stores computed workout records in Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordColumns = `workout_id, tenant_id, user_id, workout_type, readings, kind, duration_h, distance_km, mean_speed_kmh, calories, created_at`

// Create persists one workout record.
func (r *Repository) Create(ctx context.Context, record domain.WorkoutRecord) error {
	const stmt = `INSERT INTO workouts (` + recordColumns + `)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := r.pool.Exec(ctx, stmt,
		record.ID,
		record.TenantID,
		record.UserID,
		record.Tag,
		record.Readings,
		string(record.Summary.Kind),
		record.Summary.Duration,
		record.Summary.Distance,
		record.Summary.MeanSpeed,
		record.Summary.Calories,
		record.CreatedAt,
	)
	if err != nil {
		return err
	}

	observability.RecordWorkoutPersisted(record.CreatedAt)
	return nil
}

// Get fetches a record by ID within a tenant. A missing record returns
// (nil, nil); the domain layer maps that to its not-found error.
func (r *Repository) Get(ctx context.Context, tenantID, workoutID string) (*domain.WorkoutRecord, error) {
	const query = `SELECT ` + recordColumns + ` FROM workouts WHERE tenant_id=$1 AND workout_id=$2`

	record, err := scanRecord(r.pool.QueryRow(ctx, query, tenantID, workoutID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// ListByUser returns records newest-first with keyset pagination over
// (created_at, workout_id).
func (r *Repository) ListByUser(ctx context.Context, tenantID, userID string, cursor *domain.Cursor, limit int) ([]domain.WorkoutRecord, *domain.Cursor, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + recordColumns + ` FROM workouts WHERE tenant_id=$1 AND user_id=$2`
	args := []interface{}{tenantID, userID}

	if cursor != nil {
		args = append(args, cursor.CreatedAt, cursor.ID)
		query += fmt.Sprintf(" AND (created_at, workout_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, workout_id DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	records := make([]domain.WorkoutRecord, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var next *domain.Cursor
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next = &domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return records, next, nil
}

func scanRecord(row pgx.Row) (*domain.WorkoutRecord, error) {
	var record domain.WorkoutRecord
	var kind string
	if err := row.Scan(
		&record.ID,
		&record.TenantID,
		&record.UserID,
		&record.Tag,
		&record.Readings,
		&kind,
		&record.Summary.Duration,
		&record.Summary.Distance,
		&record.Summary.MeanSpeed,
		&record.Summary.Calories,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}
	record.Summary.Kind = domain.Kind(kind)
	return &record, nil
}
