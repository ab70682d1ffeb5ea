package repository

import (
	"context"

	"github.com/mdsai/analytics-api/internal/domain"
)

// memoryLocationRepository serves the authored demo locations. The list is
// fixed at construction, so no locking is needed.
type memoryLocationRepository struct {
	locations []domain.Location
}

func NewMemoryLocationRepository(locations []domain.Location) LocationRepository {
	copied := make([]domain.Location, len(locations))
	copy(copied, locations)

	return &memoryLocationRepository{locations: copied}
}

func (r *memoryLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations := make([]domain.Location, 0, len(r.locations))
	for _, location := range r.locations {
		if location.Active {
			locations = append(locations, location)
		}
	}

	return locations, nil
}

func (r *memoryLocationRepository) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	for _, location := range r.locations {
		if location.ID == locationID {
			copied := location
			return &copied, nil
		}
	}

	return nil, nil
}
