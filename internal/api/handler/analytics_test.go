package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsai/analytics-api/infrastructure/dataset"
	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/api/handler/router"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
)

var handlerAppDate = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func handlerTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
		Demo: config.Demo{Date: handlerAppDate},
	}
}

func newAnalyticsHandler(t *testing.T) http.Handler {
	t.Helper()

	locationRepo := repository.NewMemoryLocationRepository(dataset.Locations())
	service := reporting.NewService(handlerTestConfig(), locationRepo)

	return router.New(router.WithRoutes(Analytics(service)...))
}

func performRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestGetAnalyticsReport(t *testing.T) {
	handler := newAnalyticsHandler(t)

	tests := []struct {
		report   string
		validate func(t *testing.T, body map[string]any)
	}{
		{
			report: "metrics",
			validate: func(t *testing.T, body map[string]any) {
				revenue, ok := body["revenue"].(map[string]any)
				require.True(t, ok)
				assert.Greater(t, revenue["value"].(float64), 0.0)
				assert.Equal(t, "2025-06-01", body["period_start"])
				assert.Equal(t, "2025-06-15", body["period_end"])
			},
		},
		{
			report: "revenue",
			validate: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["lines"].([]any), 6)
				assert.Len(t, body["trend"].([]any), 12)
			},
		},
		{
			report: "expenses",
			validate: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["categories"].([]any), 8)
			},
		},
		{
			report: "cashflow",
			validate: func(t *testing.T, body map[string]any) {
				months := body["months"].([]any)
				require.Len(t, months, 12)
				first := months[0].(map[string]any)
				assert.Equal(t, "2025-01", first["month"])
			},
		},
		{
			report: "insurance",
			validate: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["payers"].([]any), 7)
				assert.Contains(t, body, "claim_status")
			},
		},
		{
			report: "ar-aging",
			validate: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["buckets"].([]any), 5)
				assert.Greater(t, body["total_ar"].(float64), 0.0)
			},
		},
		{
			report: "billing",
			validate: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["recent_statements"].([]any), 5)
				assert.EqualValues(t, 97, body["payment_plans"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.report, func(t *testing.T) {
			rec := performRequest(handler, http.MethodGet, "/v1/analytics/"+tt.report)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decodeBody(t, rec)
			assert.Equal(t, "all", body["location_id"])
			tt.validate(t, body)
		})
	}
}

func TestGetAnalyticsReportEchoesRangeAndLocation(t *testing.T) {
	handler := newAnalyticsHandler(t)

	for _, rng := range []string{"mtd", "qtd", "ytd", "last-month", "last-quarter", "last-year"} {
		t.Run(rng, func(t *testing.T) {
			rec := performRequest(handler, http.MethodGet, "/v1/analytics/metrics?location_id=north&range="+rng)

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, rng, body["range"])
			assert.Equal(t, "north", body["location_id"])
		})
	}
}

func TestGetAnalyticsReportDefaultsToMonthToDate(t *testing.T) {
	handler := newAnalyticsHandler(t)

	rec := performRequest(handler, http.MethodGet, "/v1/analytics/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mtd", decodeBody(t, rec)["range"])
}

func TestGetAnalyticsReportUnknownReport(t *testing.T) {
	handler := newAnalyticsHandler(t)

	rec := performRequest(handler, http.MethodGet, "/v1/analytics/trends")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "RPT_001", body["code"])
	assert.Contains(t, body["message"], `Unknown report "trends"`)
}

func TestGetAnalyticsReportUnknownLocation(t *testing.T) {
	handler := newAnalyticsHandler(t)

	rec := performRequest(handler, http.MethodGet, "/v1/analytics/metrics?location_id=tucson")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "RPT_002", body["code"])
	assert.Contains(t, body["message"], `Unknown location "tucson"`)
}

func TestGetAnalyticsReportInvalidRange(t *testing.T) {
	handler := newAnalyticsHandler(t)

	rec := performRequest(handler, http.MethodGet, "/v1/analytics/metrics?range=weekly")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VAL_003", body["code"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weekly", details["range"])
}

func TestGetAnalyticsReportIsDeterministic(t *testing.T) {
	handler := newAnalyticsHandler(t)

	first := performRequest(handler, http.MethodGet, "/v1/analytics/revenue?location_id=central&range=ytd")
	second := performRequest(handler, http.MethodGet, "/v1/analytics/revenue?location_id=central&range=ytd")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
