package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/scheduler"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
	"github.com/mdsai/analytics-api/pkg/middleware"
)

// Cron job types accepted by the manual trigger route.
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// CronJobServices holds the background services that can be triggered by
// hand.
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob triggers a background job outside its schedule. Admins only.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only admins can run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots, CronJobTypeAll:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Snapshot sync service not available", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: snapshots, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCronStatus reports the state of the background jobs. Admins only.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only admins can check cron job status", nil)
			return
		}

		status := map[string]any{
			"snapshots": services.SnapshotSyncService.GetStatus(),
		}

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}
