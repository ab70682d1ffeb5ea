package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
)

type reportBuilder func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error)

// reportBuilders maps the :report path segment to the reporting call that
// produces it. Paths outside this map answer 404.
var reportBuilders = map[string]reportBuilder{
	domain.ReportMetrics: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.MetricsOverview(ctx, locationID, rng)
	},
	domain.ReportRevenue: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.RevenueBreakdown(ctx, locationID, rng)
	},
	domain.ReportExpenses: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.ExpenseBreakdown(ctx, locationID, rng)
	},
	domain.ReportCashFlow: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.CashFlow(ctx, locationID, rng)
	},
	domain.ReportInsurance: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.Insurance(ctx, locationID, rng)
	},
	domain.ReportARAging: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.ARAging(ctx, locationID, rng)
	},
	domain.ReportBilling: func(ctx context.Context, service reporting.Reporter, locationID string, rng domain.ReportRange) (any, error) {
		return service.Billing(ctx, locationID, rng)
	},
}

// GetAnalyticsReport serves every dashboard report from a single route,
// keyed by the report name in the path.
func GetAnalyticsReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := httprouter.ParamsFromContext(r.Context()).ByName("report")

		builder, ok := reportBuilders[report]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, fmt.Sprintf("Unknown report %q", report), nil)
			return
		}

		locationID := r.URL.Query().Get("location_id")
		if locationID == "" {
			locationID = domain.LocationAll
		}

		rng, err := domain.ParseReportRange(r.URL.Query().Get("range"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
				"range": r.URL.Query().Get("range"),
			})
			return
		}

		payload, err := builder(r.Context(), service, locationID, rng)
		if err != nil {
			if errors.Is(err, reporting.ErrLocationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrLocationNotFound, fmt.Sprintf("Unknown location %q", locationID), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error building report", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logrus.Error(err)
		}
	}
}
