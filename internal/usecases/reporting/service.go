package reporting

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/mdsai/analytics-api/infrastructure/dataset"
	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/pkg/log"
	"github.com/mdsai/analytics-api/pkg/utils"
)

var ErrLocationNotFound = errors.New("location not found")

const aggregateLocationName = "All Locations"

// Authored ratios tying the billing report to the visit and receivables
// figures.
const (
	statementsPerVisit  = 0.55
	patientARShare      = 0.38
	patientPaymentShare = 0.17
	trendMonths         = 12
)

// Claim status shares applied to the claim volume of a window. The denied
// share comes from each location's denial rate instead.
const (
	pendingClaimShare     = 0.19
	resubmittedClaimShare = 0.05
)

// Service computes every report from the authored dataset. All date math is
// anchored on the pinned application date so identical requests return
// identical payloads.
type Service struct {
	cfg          *config.Config
	locationRepo repository.LocationRepository
	snapshotRepo repository.SnapshotRepository
	useSnapshots bool
	appDate      time.Time
}

func NewService(cfg *config.Config, locationRepo repository.LocationRepository) CombinedReporter {
	return &Service{
		cfg:          cfg,
		locationRepo: locationRepo,
		appDate:      cfg.Demo.Date,
	}
}

// WithSnapshots enables the snapshot store as a read-through cache for
// month-to-date overviews and as the target for the sync scheduler.
func (s *Service) WithSnapshots(snapshotRepo repository.SnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useSnapshots = snapshotRepo != nil
	return s
}

// resolveLocation maps a location ID to its dataset profiles and display
// name. The aggregate pseudo-location covers every profile; concrete IDs are
// checked against the location store first.
func (s *Service) resolveLocation(ctx context.Context, locationID string) ([]*dataset.LocationProfile, string, error) {
	if locationID == "" || locationID == domain.LocationAll {
		return dataset.AllProfiles(), aggregateLocationName, nil
	}

	location, err := s.locationRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		return nil, "", err
	}
	if location == nil {
		return nil, "", ErrLocationNotFound
	}

	profile, ok := dataset.ProfileByID(locationID)
	if !ok {
		return nil, "", ErrLocationNotFound
	}

	return []*dataset.LocationProfile{profile}, location.Name, nil
}

func normalizeLocationID(locationID string) string {
	if locationID == "" {
		return domain.LocationAll
	}
	return locationID
}

// windowTotals accumulates the flows of a date window. Rates are weighted by
// revenue so multi-location aggregates stay sensible.
type windowTotals struct {
	Revenue     float64
	Expenses    float64
	Visits      float64
	NewPatients float64
	Claims      float64

	collectionWeighted float64
	denialWeighted     float64
	daysInARWeighted   float64
}

func (t windowTotals) CollectionRate() float64 {
	if t.Revenue == 0 {
		return 0
	}
	return t.collectionWeighted / t.Revenue
}

func (t windowTotals) DenialRate() float64 {
	if t.Revenue == 0 {
		return 0
	}
	return t.denialWeighted / t.Revenue
}

func (t windowTotals) DaysInAR() float64 {
	if t.Revenue == 0 {
		return 0
	}
	return t.daysInARWeighted / t.Revenue
}

// monthOverlapFraction returns how much of a month falls inside the window,
// as a fraction of the month's days.
func monthOverlapFraction(monthStart, start, end time.Time) float64 {
	monthEnd := utils.MonthEnd(monthStart)

	lo := monthStart
	if start.After(lo) {
		lo = start
	}

	hi := monthEnd
	if end.Before(hi) {
		hi = end
	}

	if hi.Before(lo) {
		return 0
	}

	return float64(hi.Day()-lo.Day()+1) / float64(utils.DaysInMonth(monthStart))
}

func profileTotals(p *dataset.LocationProfile, start, end time.Time) windowTotals {
	var t windowTotals

	for _, month := range utils.MonthStartsBetween(start, end) {
		fraction := monthOverlapFraction(month, start, end)
		if fraction == 0 {
			continue
		}

		figures := p.MonthFigures(month)
		revenue := figures.Revenue * fraction

		t.Revenue += revenue
		t.Expenses += figures.Expenses * fraction
		t.Visits += float64(figures.Visits) * fraction
		t.NewPatients += float64(figures.NewPatients) * fraction
		t.Claims += float64(p.MonthClaims(month)) * fraction

		collection, denial, daysInAR := p.MonthRates(month)
		t.collectionWeighted += collection * revenue
		t.denialWeighted += denial * revenue
		t.daysInARWeighted += daysInAR * revenue
	}

	return t
}

func sumTotals(profiles []*dataset.LocationProfile, start, end time.Time) windowTotals {
	var sum windowTotals

	for _, p := range profiles {
		t := profileTotals(p, start, end)
		sum.Revenue += t.Revenue
		sum.Expenses += t.Expenses
		sum.Visits += t.Visits
		sum.NewPatients += t.NewPatients
		sum.Claims += t.Claims
		sum.collectionWeighted += t.collectionWeighted
		sum.denialWeighted += t.denialWeighted
		sum.daysInARWeighted += t.daysInARWeighted
	}

	return sum
}

func newMetric(current, previous float64) domain.Metric {
	return domain.Metric{
		Value:         utils.RoundWithTwoDecimalPlace(current),
		PreviousValue: utils.RoundWithTwoDecimalPlace(previous),
		ChangePercent: utils.PercentOf(current-previous, previous),
	}
}

func countMetric(current, previous float64) domain.Metric {
	return newMetric(math.Round(current), math.Round(previous))
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func (s *Service) MetricsOverview(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.MetricsOverview, error) {
	profiles, locationName, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	cacheable := s.useSnapshots && rng == domain.RangeMonthToDate &&
		locationID != "" && locationID != domain.LocationAll

	if cacheable {
		snapshot, err := s.snapshotRepo.GetByLocationAndDate(ctx, locationID, s.appDate)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("reading metric snapshot, computing live")
		} else if snapshot != nil {
			overview := snapshot.Overview
			return &overview, nil
		}
	}

	overview := s.computeOverview(profiles, locationName, locationID, rng, s.appDate)

	if cacheable {
		if err := s.saveSnapshot(ctx, locationID, s.appDate, overview); err != nil {
			log.ForContext(ctx).WithError(err).Warn("filling metric snapshot cache")
		}
	}

	return overview, nil
}

func (s *Service) computeOverview(
	profiles []*dataset.LocationProfile,
	locationName, locationID string,
	rng domain.ReportRange,
	asOf time.Time,
) *domain.MetricsOverview {
	start, end := rng.Bounds(asOf)
	prevStart, prevEnd := rng.PreviousBounds(asOf)

	current := sumTotals(profiles, start, end)
	previous := sumTotals(profiles, prevStart, prevEnd)

	return &domain.MetricsOverview{
		LocationID:         normalizeLocationID(locationID),
		LocationName:       locationName,
		Range:              rng.String(),
		PeriodStart:        start.Format("2006-01-02"),
		PeriodEnd:          end.Format("2006-01-02"),
		Revenue:            newMetric(current.Revenue, previous.Revenue),
		Expenses:           newMetric(current.Expenses, previous.Expenses),
		NetIncome:          newMetric(current.Revenue-current.Expenses, previous.Revenue-previous.Expenses),
		PatientVisits:      countMetric(current.Visits, previous.Visits),
		NewPatients:        countMetric(current.NewPatients, previous.NewPatients),
		AvgRevenuePerVisit: newMetric(safeDiv(current.Revenue, current.Visits), safeDiv(previous.Revenue, previous.Visits)),
		CollectionRate:     newMetric(current.CollectionRate(), previous.CollectionRate()),
		ClaimsDenialRate:   newMetric(current.DenialRate(), previous.DenialRate()),
		DaysInAR:           newMetric(current.DaysInAR(), previous.DaysInAR()),
	}
}

// monthlySeries builds a full-month trend ending at the month of end.
func (s *Service) monthlySeries(
	profiles []*dataset.LocationProfile,
	end time.Time,
	pick func(dataset.MonthFigures) float64,
) []domain.TrendPoint {
	lastMonth := utils.MonthStart(end)
	firstMonth := lastMonth.AddDate(0, -(trendMonths - 1), 0)

	series := make([]domain.TrendPoint, 0, trendMonths)
	for _, month := range utils.MonthStartsBetween(firstMonth, lastMonth) {
		var amount float64
		for _, p := range profiles {
			amount += pick(p.MonthFigures(month))
		}

		series = append(series, domain.TrendPoint{
			Month:     month.Format("2006-01"),
			Amount:    utils.RoundWithTwoDecimalPlace(amount),
			Projected: month.After(s.appDate),
		})
	}

	return series
}

func (s *Service) RevenueBreakdown(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.RevenueBreakdown, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	start, end := rng.Bounds(s.appDate)

	lines := breakdownSlices(profiles, start, end, func(p *dataset.LocationProfile) []dataset.WeightedLine {
		return p.ServiceLines
	}, func(t windowTotals) float64 {
		return t.Revenue
	})

	total := sumTotals(profiles, start, end).Revenue

	return &domain.RevenueBreakdown{
		LocationID: normalizeLocationID(locationID),
		Range:      rng.String(),
		Total:      utils.RoundWithTwoDecimalPlace(total),
		Lines:      lines,
		Trend: s.monthlySeries(profiles, end, func(f dataset.MonthFigures) float64 {
			return f.Revenue
		}),
	}, nil
}

func (s *Service) ExpenseBreakdown(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.ExpenseBreakdown, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	start, end := rng.Bounds(s.appDate)

	categories := breakdownSlices(profiles, start, end, func(p *dataset.LocationProfile) []dataset.WeightedLine {
		return p.ExpenseSplit
	}, func(t windowTotals) float64 {
		return t.Expenses
	})

	total := sumTotals(profiles, start, end).Expenses

	return &domain.ExpenseBreakdown{
		LocationID: normalizeLocationID(locationID),
		Range:      rng.String(),
		Total:      utils.RoundWithTwoDecimalPlace(total),
		Categories: categories,
		Trend: s.monthlySeries(profiles, end, func(f dataset.MonthFigures) float64 {
			return f.Expenses
		}),
	}, nil
}

// breakdownSlices distributes each profile's window total over its weighted
// lines, merging lines with the same name across locations.
func breakdownSlices(
	profiles []*dataset.LocationProfile,
	start, end time.Time,
	linesOf func(*dataset.LocationProfile) []dataset.WeightedLine,
	totalOf func(windowTotals) float64,
) []domain.BreakdownSlice {
	amounts := make(map[string]float64)
	var order []string
	var total float64

	for _, p := range profiles {
		profileTotal := totalOf(profileTotals(p, start, end))
		total += profileTotal

		for _, line := range linesOf(p) {
			if _, seen := amounts[line.Name]; !seen {
				order = append(order, line.Name)
			}
			amounts[line.Name] += profileTotal * line.Weight
		}
	}

	slices := make([]domain.BreakdownSlice, 0, len(order))
	for _, name := range order {
		slices = append(slices, domain.BreakdownSlice{
			Name:    name,
			Amount:  utils.RoundWithTwoDecimalPlace(amounts[name]),
			Percent: utils.PercentOf(amounts[name], total),
		})
	}

	return slices
}

func (s *Service) CashFlow(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.CashFlowReport, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	// The cash flow widget always shows the full calendar year of the
	// requested range; months past the application date are projections.
	_, end := rng.Bounds(s.appDate)
	yearStart := utils.YearStart(end)

	months := make([]domain.CashFlowMonth, 0, 12)
	for _, month := range utils.MonthStartsBetween(yearStart, utils.MonthEnd(yearStart.AddDate(0, 11, 0))) {
		var inflow, outflow float64
		for _, p := range profiles {
			figures := p.MonthFigures(month)
			collection, _, _ := p.MonthRates(month)
			inflow += figures.Revenue * collection / 100
			outflow += figures.Expenses
		}

		months = append(months, domain.CashFlowMonth{
			Month:     month.Format("2006-01"),
			Inflow:    utils.RoundWithTwoDecimalPlace(inflow),
			Outflow:   utils.RoundWithTwoDecimalPlace(outflow),
			Net:       utils.RoundWithTwoDecimalPlace(inflow - outflow),
			Projected: month.After(s.appDate),
		})
	}

	return &domain.CashFlowReport{
		LocationID: normalizeLocationID(locationID),
		Range:      rng.String(),
		Months:     months,
	}, nil
}

func (s *Service) Insurance(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.InsuranceReport, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	start, end := rng.Bounds(s.appDate)

	payerIndex := make(map[string]*domain.PayerMix)
	var order []string
	var totalBilled, totalCollected float64

	for _, p := range profiles {
		totals := profileTotals(p, start, end)

		for _, payer := range p.PayerMix {
			entry, seen := payerIndex[payer.Name]
			if !seen {
				entry = &domain.PayerMix{Payer: payer.Name}
				payerIndex[payer.Name] = entry
				order = append(order, payer.Name)
			}

			billed := totals.Revenue * payer.Weight
			entry.Billed += billed
			entry.Collected += billed * payer.CollectRate
			entry.Claims += int(totals.Claims*payer.Weight + 0.5)

			totalBilled += billed
			totalCollected += billed * payer.CollectRate
		}
	}

	payers := make([]domain.PayerMix, 0, len(order))
	for _, name := range order {
		entry := payerIndex[name]
		payers = append(payers, domain.PayerMix{
			Payer:     entry.Payer,
			Claims:    entry.Claims,
			Billed:    utils.RoundWithTwoDecimalPlace(entry.Billed),
			Collected: utils.RoundWithTwoDecimalPlace(entry.Collected),
			Percent:   utils.PercentOf(entry.Billed, totalBilled),
		})
	}

	totals := sumTotals(profiles, start, end)
	totalClaims := int(math.Round(totals.Claims))
	denied := int(totals.Claims*totals.DenialRate()/100 + 0.5)
	pending := int(totals.Claims*pendingClaimShare + 0.5)
	resubmitted := int(totals.Claims*resubmittedClaimShare + 0.5)

	return &domain.InsuranceReport{
		LocationID:     normalizeLocationID(locationID),
		Range:          rng.String(),
		TotalBilled:    utils.RoundWithTwoDecimalPlace(totalBilled),
		TotalCollected: utils.RoundWithTwoDecimalPlace(totalCollected),
		Payers:         payers,
		ClaimStatus: domain.ClaimStatusSummary{
			Paid:        totalClaims - denied - pending - resubmitted,
			Pending:     pending,
			Denied:      denied,
			Resubmitted: resubmitted,
		},
	}, nil
}

func (s *Service) ARAging(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.ARAgingReport, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	amounts := make(map[string]float64)
	var order []string
	var totalAR float64

	year := s.appDate.Year()
	for _, p := range profiles {
		ar := p.TotalAR(year)
		totalAR += ar

		for _, bucket := range p.ARBuckets {
			if _, seen := amounts[bucket.Name]; !seen {
				order = append(order, bucket.Name)
			}
			amounts[bucket.Name] += ar * bucket.Weight
		}
	}

	buckets := make([]domain.ARBucket, 0, len(order))
	for _, label := range order {
		buckets = append(buckets, domain.ARBucket{
			Label:   label,
			Amount:  utils.RoundWithTwoDecimalPlace(amounts[label]),
			Percent: utils.PercentOf(amounts[label], totalAR),
		})
	}

	return &domain.ARAgingReport{
		LocationID: normalizeLocationID(locationID),
		TotalAR:    utils.RoundWithTwoDecimalPlace(totalAR),
		Buckets:    buckets,
	}, nil
}

func (s *Service) Billing(ctx context.Context, locationID string, rng domain.ReportRange) (*domain.BillingReport, error) {
	profiles, _, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	start, end := rng.Bounds(s.appDate)
	totals := sumTotals(profiles, start, end)

	var outstanding float64
	var plans int
	recent := make([]domain.Statement, 0)

	year := s.appDate.Year()
	for _, p := range profiles {
		outstanding += p.TotalAR(year) * patientARShare
		plans += p.PaymentPlans
		recent = append(recent, p.Statements...)
	}

	sort.Slice(recent, func(i, j int) bool {
		if recent[i].SentAt != recent[j].SentAt {
			return recent[i].SentAt > recent[j].SentAt
		}
		return recent[i].Reference > recent[j].Reference
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &domain.BillingReport{
		LocationID:         normalizeLocationID(locationID),
		Range:              rng.String(),
		StatementsSent:     int(totals.Visits*statementsPerVisit + 0.5),
		OutstandingBalance: utils.RoundWithTwoDecimalPlace(outstanding),
		CollectedInPeriod:  utils.RoundWithTwoDecimalPlace(totals.Revenue * patientPaymentShare),
		PaymentPlans:       plans,
		RecentStatements:   recent,
	}, nil
}

func (s *Service) BuildSnapshot(ctx context.Context, locationID string, date time.Time) (*domain.MetricSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, errors.New("snapshot storage not configured")
	}

	profiles, locationName, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	overview := s.computeOverview(profiles, locationName, locationID, domain.RangeMonthToDate, date)

	if err := s.saveSnapshot(ctx, locationID, date, overview); err != nil {
		return nil, err
	}

	return &domain.MetricSnapshot{
		LocationID:   locationID,
		SnapshotDate: date,
		Overview:     *overview,
	}, nil
}

func (s *Service) saveSnapshot(ctx context.Context, locationID string, date time.Time, overview *domain.MetricsOverview) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(ctx, &domain.MetricSnapshot{
		ID:           id,
		LocationID:   locationID,
		SnapshotDate: date,
		Overview:     *overview,
	})
}
