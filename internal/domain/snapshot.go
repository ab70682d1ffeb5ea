package domain

import "time"

// MetricSnapshot is a persisted copy of a location's metrics overview, taken
// by the nightly sync so historical queries do not recompute the figures.
type MetricSnapshot struct {
	ID           string          `json:"id"`
	LocationID   string          `json:"location_id"`
	SnapshotDate time.Time       `json:"snapshot_date"`
	Overview     MetricsOverview `json:"overview"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
