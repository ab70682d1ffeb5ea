package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mdsai/analytics-api/internal/domain"
)

type memorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.MetricSnapshot
}

func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepository{
		snapshots: make(map[string]*domain.MetricSnapshot),
	}
}

func snapshotKey(locationID string, date time.Time) string {
	return locationID + "|" + date.Format("2006-01-02")
}

func (r *memorySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := snapshotKey(snapshot.LocationID, snapshot.SnapshotDate)

	copied := *snapshot
	now := time.Now()
	if existing, ok := r.snapshots[key]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	} else {
		copied.CreatedAt = now
	}
	copied.UpdatedAt = now

	r.snapshots[key] = &copied

	return nil
}

func (r *memorySnapshotRepository) GetByLocationAndDate(ctx context.Context, locationID string, date time.Time) (*domain.MetricSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[snapshotKey(locationID, date)]
	if !ok {
		return nil, nil
	}

	copied := *snapshot
	return &copied, nil
}

func (r *memorySnapshotRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for key, snapshot := range r.snapshots {
		if snapshot.SnapshotDate.Before(cutoff) {
			delete(r.snapshots, key)
			deleted++
		}
	}

	return deleted, nil
}
