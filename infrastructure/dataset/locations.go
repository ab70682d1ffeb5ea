package dataset

import "github.com/mdsai/analytics-api/internal/domain"

// profiles are the authored location baselines. Weights inside each group
// sum to 1.
var profiles = []*LocationProfile{
	{
		Location: domain.Location{
			ID:      "north",
			Name:    "North Phoenix Clinic",
			Address: "4280 W Thunderbird Rd",
			City:    "Phoenix",
			State:   "AZ",
			Zip:     "85053",
			Active:  true,
		},
		MonthlyRevenue:     412000,
		MonthlyExpenses:    318000,
		MonthlyVisits:      2150,
		MonthlyNewPatients: 165,
		CollectionRate:     94.2,
		DenialRate:         6.8,
		DaysInAR:           34.5,
		PaymentPlans:       42,
		ServiceLines: []WeightedLine{
			{Name: "Office Visits", Weight: 0.37},
			{Name: "Preventive Care", Weight: 0.18},
			{Name: "Procedures", Weight: 0.16},
			{Name: "Diagnostics & Labs", Weight: 0.12},
			{Name: "Imaging", Weight: 0.09},
			{Name: "Telehealth", Weight: 0.08},
		},
		ExpenseSplit: []WeightedLine{
			{Name: "Staff Salaries", Weight: 0.52},
			{Name: "Clinical Supplies", Weight: 0.13},
			{Name: "Facility & Rent", Weight: 0.11},
			{Name: "Equipment Leases", Weight: 0.06},
			{Name: "Malpractice Insurance", Weight: 0.05},
			{Name: "Administrative", Weight: 0.06},
			{Name: "Marketing", Weight: 0.03},
			{Name: "Utilities", Weight: 0.04},
		},
		PayerMix: []PayerProfile{
			{Name: "Medicare", Weight: 0.26, CollectRate: 0.96},
			{Name: "Blue Cross Blue Shield", Weight: 0.21, CollectRate: 0.95},
			{Name: "UnitedHealthcare", Weight: 0.16, CollectRate: 0.93},
			{Name: "Aetna", Weight: 0.12, CollectRate: 0.94},
			{Name: "Cigna", Weight: 0.09, CollectRate: 0.92},
			{Name: "Medicaid", Weight: 0.08, CollectRate: 0.88},
			{Name: "Self-Pay", Weight: 0.08, CollectRate: 0.61},
		},
		ARBuckets: []WeightedLine{
			{Name: "0-30", Weight: 0.44},
			{Name: "31-60", Weight: 0.24},
			{Name: "61-90", Weight: 0.14},
			{Name: "91-120", Weight: 0.09},
			{Name: "120+", Weight: 0.09},
		},
		Statements: []domain.Statement{
			{Reference: "ST-8104", Patient: "Maria G.", Amount: 182.50, Status: "paid", SentAt: "2025-06-02"},
			{Reference: "ST-8097", Patient: "James T.", Amount: 645.00, Status: "sent", SentAt: "2025-06-09"},
			{Reference: "ST-8081", Patient: "Rosa M.", Amount: 96.25, Status: "overdue", SentAt: "2025-05-12"},
			{Reference: "ST-8075", Patient: "Daniel K.", Amount: 310.40, Status: "paid", SentAt: "2025-05-28"},
			{Reference: "ST-8066", Patient: "Alice W.", Amount: 1240.00, Status: "sent", SentAt: "2025-06-11"},
		},
	},
	{
		Location: domain.Location{
			ID:      "central",
			Name:    "Central Phoenix Clinic",
			Address: "1102 E McDowell Rd",
			City:    "Phoenix",
			State:   "AZ",
			Zip:     "85006",
			Active:  true,
		},
		MonthlyRevenue:     365000,
		MonthlyExpenses:    287000,
		MonthlyVisits:      1980,
		MonthlyNewPatients: 148,
		CollectionRate:     92.7,
		DenialRate:         7.9,
		DaysInAR:           38.2,
		PaymentPlans:       37,
		ServiceLines: []WeightedLine{
			{Name: "Office Visits", Weight: 0.40},
			{Name: "Preventive Care", Weight: 0.15},
			{Name: "Procedures", Weight: 0.14},
			{Name: "Diagnostics & Labs", Weight: 0.13},
			{Name: "Imaging", Weight: 0.10},
			{Name: "Telehealth", Weight: 0.08},
		},
		ExpenseSplit: []WeightedLine{
			{Name: "Staff Salaries", Weight: 0.50},
			{Name: "Clinical Supplies", Weight: 0.12},
			{Name: "Facility & Rent", Weight: 0.14},
			{Name: "Equipment Leases", Weight: 0.05},
			{Name: "Malpractice Insurance", Weight: 0.05},
			{Name: "Administrative", Weight: 0.07},
			{Name: "Marketing", Weight: 0.03},
			{Name: "Utilities", Weight: 0.04},
		},
		PayerMix: []PayerProfile{
			{Name: "Medicare", Weight: 0.23, CollectRate: 0.96},
			{Name: "Blue Cross Blue Shield", Weight: 0.19, CollectRate: 0.95},
			{Name: "UnitedHealthcare", Weight: 0.17, CollectRate: 0.93},
			{Name: "Aetna", Weight: 0.13, CollectRate: 0.94},
			{Name: "Cigna", Weight: 0.10, CollectRate: 0.92},
			{Name: "Medicaid", Weight: 0.11, CollectRate: 0.88},
			{Name: "Self-Pay", Weight: 0.07, CollectRate: 0.61},
		},
		ARBuckets: []WeightedLine{
			{Name: "0-30", Weight: 0.41},
			{Name: "31-60", Weight: 0.23},
			{Name: "61-90", Weight: 0.15},
			{Name: "91-120", Weight: 0.10},
			{Name: "120+", Weight: 0.11},
		},
		Statements: []domain.Statement{
			{Reference: "ST-5218", Patient: "Luis H.", Amount: 420.00, Status: "sent", SentAt: "2025-06-10"},
			{Reference: "ST-5203", Patient: "Karen B.", Amount: 88.00, Status: "paid", SentAt: "2025-06-03"},
			{Reference: "ST-5197", Patient: "Tom S.", Amount: 1512.75, Status: "overdue", SentAt: "2025-05-06"},
			{Reference: "ST-5190", Patient: "Priya N.", Amount: 240.10, Status: "paid", SentAt: "2025-05-22"},
			{Reference: "ST-5184", Patient: "Evan R.", Amount: 505.30, Status: "sent", SentAt: "2025-06-12"},
		},
	},
	{
		Location: domain.Location{
			ID:      "mesa",
			Name:    "Mesa Clinic",
			Address: "733 S Dobson Rd",
			City:    "Mesa",
			State:   "AZ",
			Zip:     "85202",
			Active:  true,
		},
		MonthlyRevenue:     248000,
		MonthlyExpenses:    201000,
		MonthlyVisits:      1420,
		MonthlyNewPatients: 112,
		CollectionRate:     95.1,
		DenialRate:         5.4,
		DaysInAR:           29.8,
		PaymentPlans:       18,
		ServiceLines: []WeightedLine{
			{Name: "Office Visits", Weight: 0.42},
			{Name: "Preventive Care", Weight: 0.19},
			{Name: "Procedures", Weight: 0.11},
			{Name: "Diagnostics & Labs", Weight: 0.12},
			{Name: "Imaging", Weight: 0.06},
			{Name: "Telehealth", Weight: 0.10},
		},
		ExpenseSplit: []WeightedLine{
			{Name: "Staff Salaries", Weight: 0.54},
			{Name: "Clinical Supplies", Weight: 0.14},
			{Name: "Facility & Rent", Weight: 0.09},
			{Name: "Equipment Leases", Weight: 0.07},
			{Name: "Malpractice Insurance", Weight: 0.05},
			{Name: "Administrative", Weight: 0.05},
			{Name: "Marketing", Weight: 0.02},
			{Name: "Utilities", Weight: 0.04},
		},
		PayerMix: []PayerProfile{
			{Name: "Medicare", Weight: 0.31, CollectRate: 0.96},
			{Name: "Blue Cross Blue Shield", Weight: 0.18, CollectRate: 0.95},
			{Name: "UnitedHealthcare", Weight: 0.14, CollectRate: 0.93},
			{Name: "Aetna", Weight: 0.10, CollectRate: 0.94},
			{Name: "Cigna", Weight: 0.08, CollectRate: 0.92},
			{Name: "Medicaid", Weight: 0.09, CollectRate: 0.88},
			{Name: "Self-Pay", Weight: 0.10, CollectRate: 0.61},
		},
		ARBuckets: []WeightedLine{
			{Name: "0-30", Weight: 0.49},
			{Name: "31-60", Weight: 0.25},
			{Name: "61-90", Weight: 0.12},
			{Name: "91-120", Weight: 0.08},
			{Name: "120+", Weight: 0.06},
		},
		Statements: []domain.Statement{
			{Reference: "ST-3149", Patient: "Gloria P.", Amount: 134.90, Status: "paid", SentAt: "2025-06-05"},
			{Reference: "ST-3141", Patient: "Hank D.", Amount: 720.00, Status: "sent", SentAt: "2025-06-08"},
			{Reference: "ST-3137", Patient: "Nina F.", Amount: 58.75, Status: "paid", SentAt: "2025-05-30"},
			{Reference: "ST-3128", Patient: "Omar Z.", Amount: 389.60, Status: "overdue", SentAt: "2025-05-09"},
			{Reference: "ST-3120", Patient: "Beth C.", Amount: 915.20, Status: "sent", SentAt: "2025-06-13"},
		},
	},
}
