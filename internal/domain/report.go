package domain

// Report names accepted by the analytics endpoint.
const (
	ReportMetrics   = "metrics"
	ReportRevenue   = "revenue"
	ReportExpenses  = "expenses"
	ReportCashFlow  = "cashflow"
	ReportInsurance = "insurance"
	ReportARAging   = "ar-aging"
	ReportBilling   = "billing"
)

// Metric carries a headline figure with its prior-period comparison.
type Metric struct {
	Value         float64 `json:"value"`
	PreviousValue float64 `json:"previous_value"`
	ChangePercent float64 `json:"change_percent"`
}

type MetricsOverview struct {
	LocationID         string `json:"location_id"`
	LocationName       string `json:"location_name"`
	Range              string `json:"range"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	Revenue            Metric `json:"revenue"`
	Expenses           Metric `json:"expenses"`
	NetIncome          Metric `json:"net_income"`
	PatientVisits      Metric `json:"patient_visits"`
	NewPatients        Metric `json:"new_patients"`
	AvgRevenuePerVisit Metric `json:"avg_revenue_per_visit"`
	CollectionRate     Metric `json:"collection_rate"`
	ClaimsDenialRate   Metric `json:"claims_denial_rate"`
	DaysInAR           Metric `json:"days_in_ar"`
}

type BreakdownSlice struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type TrendPoint struct {
	Month     string  `json:"month"`
	Amount    float64 `json:"amount"`
	Projected bool    `json:"projected"`
}

type RevenueBreakdown struct {
	LocationID string           `json:"location_id"`
	Range      string           `json:"range"`
	Total      float64          `json:"total"`
	Lines      []BreakdownSlice `json:"lines"`
	Trend      []TrendPoint     `json:"trend"`
}

type ExpenseBreakdown struct {
	LocationID string           `json:"location_id"`
	Range      string           `json:"range"`
	Total      float64          `json:"total"`
	Categories []BreakdownSlice `json:"categories"`
	Trend      []TrendPoint     `json:"trend"`
}

type CashFlowMonth struct {
	Month     string  `json:"month"`
	Inflow    float64 `json:"inflow"`
	Outflow   float64 `json:"outflow"`
	Net       float64 `json:"net"`
	Projected bool    `json:"projected"`
}

type CashFlowReport struct {
	LocationID string          `json:"location_id"`
	Range      string          `json:"range"`
	Months     []CashFlowMonth `json:"months"`
}

type PayerMix struct {
	Payer     string  `json:"payer"`
	Claims    int     `json:"claims"`
	Billed    float64 `json:"billed"`
	Collected float64 `json:"collected"`
	Percent   float64 `json:"percent"`
}

type ClaimStatusSummary struct {
	Paid        int `json:"paid"`
	Pending     int `json:"pending"`
	Denied      int `json:"denied"`
	Resubmitted int `json:"resubmitted"`
}

type InsuranceReport struct {
	LocationID     string             `json:"location_id"`
	Range          string             `json:"range"`
	TotalBilled    float64            `json:"total_billed"`
	TotalCollected float64            `json:"total_collected"`
	Payers         []PayerMix         `json:"payers"`
	ClaimStatus    ClaimStatusSummary `json:"claim_status"`
}

type ARBucket struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type ARAgingReport struct {
	LocationID string     `json:"location_id"`
	TotalAR    float64    `json:"total_ar"`
	Buckets    []ARBucket `json:"buckets"`
}

type Statement struct {
	Reference string  `json:"reference"`
	Patient   string  `json:"patient"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	SentAt    string  `json:"sent_at"`
}

type BillingReport struct {
	LocationID         string      `json:"location_id"`
	Range              string      `json:"range"`
	StatementsSent     int         `json:"statements_sent"`
	OutstandingBalance float64     `json:"outstanding_balance"`
	CollectedInPeriod  float64     `json:"collected_in_period"`
	PaymentPlans       int         `json:"payment_plans"`
	RecentStatements   []Statement `json:"recent_statements"`
}
