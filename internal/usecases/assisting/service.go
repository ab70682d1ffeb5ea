package assisting

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
)

// Assistant answers natural-language questions about the practice by
// matching them against a fixed rule table and filling the response with
// figures from the reporting service.
type Assistant interface {
	Answer(ctx context.Context, question string) (*domain.AssistantAnswer, error)
	PopularQuestions() []string
}

type Service struct {
	reporter reporting.Reporter
	rules    []rule
}

type rule struct {
	keywords []string
	phrases  []string
	respond  func(ctx context.Context, s *Service) (string, error)
}

func NewService(reporter reporting.Reporter) Assistant {
	s := &Service{reporter: reporter}
	s.rules = []rule{
		{
			keywords: []string{"revenue", "income", "earnings", "sales"},
			respond:  answerRevenue,
		},
		{
			keywords: []string{"expense", "expenses", "spending", "cost", "costs", "overhead"},
			respond:  answerExpenses,
		},
		{
			phrases:  []string{"cash flow"},
			keywords: []string{"cashflow", "projection", "projected", "forecast"},
			respond:  answerCashFlow,
		},
		{
			keywords: []string{"denial", "denials", "denied"},
			respond:  answerDenials,
		},
		{
			keywords: []string{"insurance", "payer", "payers", "claim", "claims", "reimbursement"},
			respond:  answerInsurance,
		},
		{
			phrases:  []string{"accounts receivable"},
			keywords: []string{"receivable", "receivables", "aging", "outstanding", "unpaid"},
			respond:  answerARAging,
		},
		{
			keywords: []string{"collection", "collections", "collected"},
			respond:  answerCollections,
		},
		{
			keywords: []string{"patient", "patients", "visit", "visits", "volume"},
			respond:  answerPatients,
		},
		{
			keywords: []string{"billing", "statement", "statements", "invoice", "invoices"},
			respond:  answerBilling,
		},
		{
			keywords: []string{"location", "locations", "clinic", "clinics", "compare", "comparison"},
			respond:  answerLocations,
		},
		{
			keywords: []string{"profit", "margin", "profitability"},
			respond:  answerProfit,
		},
	}
	return s
}

func (s *Service) PopularQuestions() []string {
	return []string{
		"How is revenue trending this month?",
		"What are my biggest expense categories?",
		"Which payers drive most of our collections?",
		"How much is sitting in accounts receivable?",
		"How do the clinics compare on revenue?",
		"What does cash flow look like for the rest of the year?",
	}
}

func (s *Service) Answer(ctx context.Context, question string) (*domain.AssistantAnswer, error) {
	normalized := strings.ToLower(strings.TrimSpace(question))
	tokens := tokenize(normalized)

	for _, r := range s.rules {
		if !r.matches(normalized, tokens) {
			continue
		}

		text, err := r.respond(ctx, s)
		if err != nil {
			return nil, err
		}

		return &domain.AssistantAnswer{
			Question: question,
			Answer:   text,
			Matched:  true,
		}, nil
	}

	return &domain.AssistantAnswer{
		Question: question,
		Answer: "I can help with questions about revenue, expenses, cash flow, insurance claims, " +
			"accounts receivable, patient volume and billing. Try one of the suggestions below.",
		Matched:            false,
		SuggestedQuestions: s.PopularQuestions(),
	}, nil
}

func (r rule) matches(question string, tokens map[string]bool) bool {
	for _, phrase := range r.phrases {
		if strings.Contains(question, phrase) {
			return true
		}
	}
	for _, keyword := range r.keywords {
		if tokens[keyword] {
			return true
		}
	}
	return false
}

func tokenize(question string) map[string]bool {
	words := strings.FieldsFunc(question, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make(map[string]bool, len(words))
	for _, w := range words {
		tokens[w] = true
	}
	return tokens
}

func answerRevenue(ctx context.Context, s *Service) (string, error) {
	overview, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Month-to-date revenue across all locations is %s, %s %s versus the previous period. "+
			"Average revenue per visit is %s.",
		formatMoney(overview.Revenue.Value),
		direction(overview.Revenue.ChangePercent),
		formatPercent(math.Abs(overview.Revenue.ChangePercent)),
		formatMoney(overview.AvgRevenuePerVisit.Value),
	), nil
}

func answerExpenses(ctx context.Context, s *Service) (string, error) {
	breakdown, err := s.reporter.ExpenseBreakdown(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	if len(breakdown.Categories) == 0 {
		return fmt.Sprintf("Month-to-date expenses total %s.", formatMoney(breakdown.Total)), nil
	}

	top := breakdown.Categories[0]
	for _, c := range breakdown.Categories[1:] {
		if c.Amount > top.Amount {
			top = c
		}
	}

	return fmt.Sprintf(
		"Month-to-date expenses total %s. The largest category is %s at %s, %s of all spending.",
		formatMoney(breakdown.Total),
		top.Name,
		formatMoney(top.Amount),
		formatPercent(top.Percent),
	), nil
}

func answerCashFlow(ctx context.Context, s *Service) (string, error) {
	report, err := s.reporter.CashFlow(ctx, domain.LocationAll, domain.RangeYearToDate)
	if err != nil {
		return "", err
	}

	var actual, projected float64
	var projectedMonths int
	for _, m := range report.Months {
		if m.Projected {
			projected += m.Net
			projectedMonths++
		} else {
			actual += m.Net
		}
	}

	return fmt.Sprintf(
		"Net cash flow so far this year is %s. The remaining %d months are projected to add %s, "+
			"for a full-year net of %s.",
		formatMoney(actual),
		projectedMonths,
		formatMoney(projected),
		formatMoney(actual+projected),
	), nil
}

func answerDenials(ctx context.Context, s *Service) (string, error) {
	overview, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	report, err := s.reporter.Insurance(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"The claims denial rate is %s month to date, with %d denied claims out of %d. "+
			"Most denials come from eligibility and coding issues, so front-desk verification "+
			"is the fastest lever.",
		formatPercent(overview.ClaimsDenialRate.Value),
		report.ClaimStatus.Denied,
		report.ClaimStatus.Paid+report.ClaimStatus.Pending+report.ClaimStatus.Denied+report.ClaimStatus.Resubmitted,
	), nil
}

func answerInsurance(ctx context.Context, s *Service) (string, error) {
	report, err := s.reporter.Insurance(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	if len(report.Payers) == 0 {
		return fmt.Sprintf("Insurance billed %s month to date and collected %s.",
			formatMoney(report.TotalBilled), formatMoney(report.TotalCollected)), nil
	}

	top := report.Payers[0]
	for _, p := range report.Payers[1:] {
		if p.Billed > top.Billed {
			top = p
		}
	}

	return fmt.Sprintf(
		"Insurance billed %s month to date and collected %s. %s is the largest payer at %s of billed "+
			"charges, with %s collected.",
		formatMoney(report.TotalBilled),
		formatMoney(report.TotalCollected),
		top.Payer,
		formatPercent(top.Percent),
		formatMoney(top.Collected),
	), nil
}

func answerARAging(ctx context.Context, s *Service) (string, error) {
	report, err := s.reporter.ARAging(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("Total accounts receivable stands at %s.", formatMoney(report.TotalAR))

	for _, bucket := range report.Buckets {
		if bucket.Label == "120+" {
			text += fmt.Sprintf(
				" %s (%s) is older than 120 days and at high risk of write-off.",
				formatMoney(bucket.Amount),
				formatPercent(bucket.Percent),
			)
			break
		}
	}

	return text, nil
}

func answerCollections(ctx context.Context, s *Service) (string, error) {
	overview, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"The collection rate is %s month to date, %s %s versus the previous period. "+
			"Days in AR currently sit at %.1f.",
		formatPercent(overview.CollectionRate.Value),
		direction(overview.CollectionRate.ChangePercent),
		formatPercent(math.Abs(overview.CollectionRate.ChangePercent)),
		overview.DaysInAR.Value,
	), nil
}

func answerPatients(ctx context.Context, s *Service) (string, error) {
	overview, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Patient visits total %.0f month to date, including %.0f new patients. "+
			"Visit volume is %s %s versus the previous period.",
		overview.PatientVisits.Value,
		overview.NewPatients.Value,
		direction(overview.PatientVisits.ChangePercent),
		formatPercent(math.Abs(overview.PatientVisits.ChangePercent)),
	), nil
}

func answerBilling(ctx context.Context, s *Service) (string, error) {
	report, err := s.reporter.Billing(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%d patient statements went out this period and %s was collected from patients. "+
			"Outstanding patient balances total %s across %d active payment plans.",
		report.StatementsSent,
		formatMoney(report.CollectedInPeriod),
		formatMoney(report.OutstandingBalance),
		report.PaymentPlans,
	), nil
}

func answerLocations(ctx context.Context, s *Service) (string, error) {
	all, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Combined month-to-date revenue is %s. North Phoenix runs the highest volume, Central Phoenix "+
			"follows closely, and Mesa is the smallest but holds the best collection rate. "+
			"Switch the location filter on the dashboard for a side-by-side view.",
		formatMoney(all.Revenue.Value),
	), nil
}

func answerProfit(ctx context.Context, s *Service) (string, error) {
	overview, err := s.reporter.MetricsOverview(ctx, domain.LocationAll, domain.RangeMonthToDate)
	if err != nil {
		return "", err
	}

	margin := 0.0
	if overview.Revenue.Value != 0 {
		margin = overview.NetIncome.Value / overview.Revenue.Value * 100
	}

	return fmt.Sprintf(
		"Net income is %s month to date on %s of revenue, a %s operating margin.",
		formatMoney(overview.NetIncome.Value),
		formatMoney(overview.Revenue.Value),
		formatPercent(margin),
	), nil
}

func direction(change float64) string {
	if change < 0 {
		return "down"
	}
	return "up"
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// formatMoney renders a dollar amount with thousands separators and no
// cents, matching how the dashboard cards display currency.
func formatMoney(v float64) string {
	n := int64(math.Round(v))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return sign + "$" + b.String()
}
