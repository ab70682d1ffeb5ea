package reporting

import (
	"context"
	"time"

	"github.com/mdsai/analytics-api/internal/domain"
)

// Reporter builds the dashboard report payloads.
type Reporter interface {
	// MetricsOverview returns the headline figures with prior-period deltas.
	MetricsOverview(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.MetricsOverview, error)

	// RevenueBreakdown splits revenue by service line with a monthly trend.
	RevenueBreakdown(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.RevenueBreakdown, error)

	// ExpenseBreakdown splits expenses by category with a monthly trend.
	ExpenseBreakdown(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.ExpenseBreakdown, error)

	// CashFlow returns the month-by-month series for the year containing the
	// range, flagging months past the application date as projected.
	CashFlow(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.CashFlowReport, error)

	// Insurance returns the payer mix and claim status counts.
	Insurance(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.InsuranceReport, error)

	// ARAging buckets outstanding receivables by age. The receivables stock
	// is a point-in-time figure, so the range is ignored.
	ARAging(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.ARAgingReport, error)

	// Billing summarizes patient statements and collections.
	Billing(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.BillingReport, error)
}

// Snapshotter produces persisted metric snapshots for the sync scheduler.
type Snapshotter interface {
	// BuildSnapshot computes and stores the month-to-date overview for one
	// location as of the given date.
	BuildSnapshot(ctx context.Context, locationID string, date time.Time) (*domain.MetricSnapshot, error)
}

// CombinedReporter is the full reporting surface.
type CombinedReporter interface {
	Reporter
	Snapshotter
}
