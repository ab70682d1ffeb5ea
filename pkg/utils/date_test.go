package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthStart(t *testing.T) {
	result := MonthStart(time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), result)
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "thirty day month",
			input:    time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "february in a regular year",
			input:    time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "february in a leap year",
			input:    time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december stays inside the year",
			input:    time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthEnd(tt.input))
		})
	}
}

func TestQuarterStart(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "first month of a quarter",
			input:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "middle of a quarter",
			input:    time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last month of the year",
			input:    time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuarterStart(tt.input))
		})
	}
}

func TestYearStart(t *testing.T) {
	result := YearStart(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), result)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)))
}

func TestMonthStartsBetween(t *testing.T) {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	months := MonthStartsBetween(start, end)

	assert.Equal(t, []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}, months)
}

func TestMonthStartsBetweenSingleMonth(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	months := MonthStartsBetween(start, end)

	assert.Len(t, months, 1)
	assert.Equal(t, start, months[0])
}
