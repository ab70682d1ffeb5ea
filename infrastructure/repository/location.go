package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mdsai/analytics-api/infrastructure/database/postgres"
	"github.com/mdsai/analytics-api/internal/domain"
)

const locationsTable = "locations"

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
}

type locationRepository struct {
	conn *postgres.Connection
}

func NewLocationRepository(conn *postgres.Connection) LocationRepository {
	return &locationRepository{
		conn: conn,
	}
}

func (r *locationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query, args, err := squirrel.
		Select("id", "name", "address", "city", "state", "zip", "active").
		From(locationsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building locations query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Address,
			&location.City,
			&location.State,
			&location.Zip,
			&location.Active,
		); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}

		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}

	return locations, nil
}

func (r *locationRepository) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query, args, err := squirrel.
		Select("id", "name", "address", "city", "state", "zip", "active").
		From(locationsTable).
		Where(squirrel.Eq{"id": locationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building location query: %w", err)
	}

	var location domain.Location
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&location.ID,
		&location.Name,
		&location.Address,
		&location.City,
		&location.State,
		&location.Zip,
		&location.Active,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching location: %w", err)
	}

	return &location, nil
}
