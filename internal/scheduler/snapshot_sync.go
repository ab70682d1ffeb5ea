package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
)

// SnapshotSyncConfig holds the scheduler settings for the snapshot job.
type SnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// SnapshotSyncService precomputes the month-to-date overview for every
// location on a schedule so dashboard reads hit the snapshot store instead
// of recomputing.
type SnapshotSyncService struct {
	scheduler    *gocron.Scheduler
	config       SnapshotSyncConfig
	appConfig    *config.Config
	locationRepo repository.LocationRepository
	snapshotRepo repository.SnapshotRepository
	reporter     reporting.Snapshotter

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSnapshotSyncService(
	locationRepo repository.LocationRepository,
	snapshotRepo repository.SnapshotRepository,
	reporter reporting.Snapshotter,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:  appConfig.SnapshotSync.CronSchedule,
		RetentionDays: appConfig.SnapshotSync.RetentionDays,
		SyncEnabled:   appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("snapshot sync scheduler configuration loaded")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		locationRepo: locationRepo,
		snapshotRepo: snapshotRepo,
		reporter:     reporter,
	}
}

// Start schedules the sync job and keeps it running until the context is
// cancelled.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("metric snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting metric snapshot sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("scheduling metric snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping metric snapshot sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots rebuilds the snapshot for every location, then prunes
// entries older than the retention window. Only one run executes at a time.
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("metric snapshot sync already running, skipping")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var syncErr string

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncError = syncErr
		s.syncMutex.Unlock()
	}()

	ctx := context.Background()
	snapshotDate := s.appConfig.Demo.Date

	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		syncErr = err.Error()
		logrus.WithError(err).Error("listing locations for snapshot sync")
		return
	}

	var built, failed int
	for _, location := range locations {
		if _, err := s.reporter.BuildSnapshot(ctx, location.ID, snapshotDate); err != nil {
			failed++
			syncErr = err.Error()
			logrus.WithError(err).WithField("location_id", location.ID).Error("building metric snapshot")
			continue
		}
		built++
	}

	if s.config.RetentionDays > 0 {
		cutoff := snapshotDate.AddDate(0, 0, -s.config.RetentionDays)
		removed, err := s.snapshotRepo.DeleteBefore(ctx, cutoff)
		if err != nil {
			logrus.WithError(err).Error("pruning old metric snapshots")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("pruned old metric snapshots")
		}
	}

	logrus.WithFields(logrus.Fields{
		"built":       built,
		"failed":      failed,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("metric snapshot sync finished")
}

// TriggerManualSync starts a sync outside the schedule. The run happens in
// the background; an already-running sync makes this a no-op.
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("metric snapshot sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual metric snapshot sync")
	go s.syncAllSnapshots()
}

// GetStatus reports the scheduler configuration and the outcome of the most
// recent run.
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
