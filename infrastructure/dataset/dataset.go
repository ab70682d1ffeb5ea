// Package dataset holds the authored demo figures the reports are built
// from. Figures are literals tuned per location, scaled by fixed seasonal
// and year-over-year factors, so the same query always produces the same
// payload.
package dataset

import (
	"time"

	"github.com/mdsai/analytics-api/internal/domain"
)

// baseYear anchors the year-over-year growth curve. Profile baselines
// describe a typical month of this year.
const baseYear = 2025

// yearGrowth compounds revenue and visit volume between years.
const yearGrowth = 1.06

// seasonal scales a month's baseline. Index 0 is January.
var seasonal = [12]float64{
	0.96, 0.94, 1.02, 1.00, 1.03, 1.01,
	0.97, 0.99, 1.04, 1.06, 1.02, 0.96,
}

// claimsPerVisit approximates how many visits produce an insurance claim.
const claimsPerVisit = 0.82

type WeightedLine struct {
	Name   string
	Weight float64
}

type PayerProfile struct {
	Name        string
	Weight      float64
	CollectRate float64
}

// LocationProfile is the authored baseline for one practice location.
type LocationProfile struct {
	Location domain.Location

	MonthlyRevenue     float64
	MonthlyExpenses    float64
	MonthlyVisits      int
	MonthlyNewPatients int
	CollectionRate     float64
	DenialRate         float64
	DaysInAR           float64
	PaymentPlans       int

	ServiceLines []WeightedLine
	ExpenseSplit []WeightedLine
	PayerMix     []PayerProfile
	ARBuckets    []WeightedLine

	Statements []domain.Statement
}

// MonthFigures are the raw flows of a single calendar month, before any
// presentation rounding.
type MonthFigures struct {
	Revenue     float64
	Expenses    float64
	Visits      int
	NewPatients int
}

func growthFactor(year int) float64 {
	factor := 1.0

	switch {
	case year > baseYear:
		for y := baseYear; y < year; y++ {
			factor *= yearGrowth
		}
	case year < baseYear:
		for y := year; y < baseYear; y++ {
			factor /= yearGrowth
		}
	}

	return factor
}

// MonthFigures scales the profile baseline to a concrete calendar month.
// Expenses track the season only partially since most practice costs are
// fixed.
func (p *LocationProfile) MonthFigures(month time.Time) MonthFigures {
	factor := seasonal[month.Month()-1] * growthFactor(month.Year())
	expenseFactor := 1 + (factor-1)*0.35

	return MonthFigures{
		Revenue:     p.MonthlyRevenue * factor,
		Expenses:    p.MonthlyExpenses * expenseFactor,
		Visits:      int(float64(p.MonthlyVisits)*factor + 0.5),
		NewPatients: int(float64(p.MonthlyNewPatients)*factor + 0.5),
	}
}

// MonthClaims derives the claim count for a month from visit volume.
func (p *LocationProfile) MonthClaims(month time.Time) int {
	return int(float64(p.MonthFigures(month).Visits)*claimsPerVisit + 0.5)
}

// MonthRates modulates the billing rates slightly with the season so
// period-over-period comparisons show movement without leaving the authored
// baselines.
func (p *LocationProfile) MonthRates(month time.Time) (collection, denial, daysInAR float64) {
	f := seasonal[month.Month()-1]
	return p.CollectionRate + (f-1)*3, p.DenialRate - (f-1)*2, p.DaysInAR - (f-1)*10
}

// TotalAR estimates the receivables stock from the baseline revenue and the
// location's days-in-AR, grown to the given year.
func (p *LocationProfile) TotalAR(year int) float64 {
	return p.MonthlyRevenue * growthFactor(year) * p.DaysInAR / 30.4
}

// Locations lists the practice locations in display order.
func Locations() []domain.Location {
	locations := make([]domain.Location, 0, len(profiles))
	for _, p := range profiles {
		locations = append(locations, p.Location)
	}

	return locations
}

// ProfileByID resolves a location profile. The aggregate pseudo-location is
// not a profile; callers aggregate over AllProfiles for it.
func ProfileByID(id string) (*LocationProfile, bool) {
	for _, p := range profiles {
		if p.Location.ID == id {
			return p, true
		}
	}

	return nil, false
}

// AllProfiles returns every location profile in display order.
func AllProfiles() []*LocationProfile {
	out := make([]*LocationProfile, len(profiles))
	copy(out, profiles)

	return out
}
