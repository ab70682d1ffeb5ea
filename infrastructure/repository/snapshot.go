package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mdsai/analytics-api/infrastructure/database/postgres"
	"github.com/mdsai/analytics-api/internal/domain"
)

const snapshotsTable = "metric_snapshots ms"

type SnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.MetricSnapshot) error
	GetByLocationAndDate(ctx context.Context, locationID string, date time.Time) (*domain.MetricSnapshot, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	overviewJSON, err := json.Marshal(snapshot.Overview)
	if err != nil {
		return fmt.Errorf("serializing overview to JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("metric_snapshots").
		Columns("id", "location_id", "snapshot_date", "overview").
		Values(
			snapshot.ID,
			snapshot.LocationID,
			snapshot.SnapshotDate.Format("2006-01-02"),
			overviewJSON,
		).
		Suffix(`
			ON CONFLICT (location_id, snapshot_date) DO UPDATE SET
				overview = EXCLUDED.overview,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building snapshot upsert: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing snapshot upsert: %w", err)
	}

	return nil
}

func (r *snapshotRepository) GetByLocationAndDate(ctx context.Context, locationID string, date time.Time) (*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.location_id, ms.snapshot_date, ms.overview, ms.created_at, ms.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ms.location_id": locationID, "ms.snapshot_date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building snapshot query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where(squirrel.Lt{"snapshot_date": cutoff.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building snapshot delete: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("executing snapshot delete: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}
	var overviewJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.LocationID,
		&snapshot.SnapshotDate,
		&overviewJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if overviewJSON != nil {
		if err := json.Unmarshal(overviewJSON, &snapshot.Overview); err != nil {
			return nil, fmt.Errorf("deserializing overview JSON: %w", err)
		}
	}

	return snapshot, nil
}
