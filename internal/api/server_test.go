package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdsai/analytics-api/infrastructure/dataset"
	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/scheduler"
	"github.com/mdsai/analytics-api/internal/usecases/assisting"
	"github.com/mdsai/analytics-api/internal/usecases/authenticating"
	"github.com/mdsai/analytics-api/internal/usecases/practice"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
	"github.com/mdsai/analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func serverTestConfig() *config.Config {
	return &config.Config{
		Server:       config.Server{Host: "localhost", Port: "8000"},
		Auth:         config.Auth{Secret: "test-secret"},
		Demo:         config.Demo{Date: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)},
		SnapshotSync: config.SnapshotSync{CronSchedule: "0 2 * * *", RetentionDays: 400},
	}
}

func seedServerUsers(t *testing.T) []*domain.User {
	t.Helper()

	seeds := []struct {
		id       string
		username string
		password string
		roleID   int
	}{
		{"u-admin", "admin", "MDSdemo2025!", middleware.RoleAdmin},
		{"u-manager", "officemgr", "RunTheDesk2025!", middleware.RoleManager},
		{"u-viewer", "frontdesk", "ViewOnly2025!", middleware.RoleViewer},
	}

	users := make([]*domain.User, 0, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.MinCost)
		require.NoError(t, err)

		users = append(users, &domain.User{
			ID:           seed.id,
			Username:     seed.username,
			Name:         seed.username,
			PasswordHash: string(hash),
			Active:       true,
			RoleID:       seed.roleID,
		})
	}

	return users
}

// newTestHandler wires the same stack main assembles for a demo run, minus
// the scheduler start and the listener.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := serverTestConfig()

	userRepo := repository.NewMemoryUserRepository(seedServerUsers(t)...)
	locationRepo := repository.NewMemoryLocationRepository(dataset.Locations())
	snapshotRepo := repository.NewMemorySnapshotRepository()

	authenticator := authenticating.NewService(userRepo, cfg)
	reporter := reporting.NewService(cfg, locationRepo).(*reporting.Service).WithSnapshots(snapshotRepo)
	assistant := assisting.NewService(reporter)
	practiceService := practice.NewService(locationRepo)
	syncService := scheduler.NewSnapshotSyncService(locationRepo, snapshotRepo, reporter, cfg)

	srv, err := New(cfg, reporter, assistant, practiceService, authenticator, syncService)
	require.NoError(t, err)

	return srv.httpServer.Handler
}

func perform(handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func loginAs(t *testing.T, handler http.Handler, username, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := perform(handler, http.MethodPost, "/v1/login", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	token, _ := decodeJSON(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	return token
}

func TestNewBuildsTheServer(t *testing.T) {
	cfg := serverTestConfig()

	userRepo := repository.NewMemoryUserRepository()
	locationRepo := repository.NewMemoryLocationRepository(dataset.Locations())
	snapshotRepo := repository.NewMemorySnapshotRepository()

	authenticator := authenticating.NewService(userRepo, cfg)
	reporter := reporting.NewService(cfg, locationRepo)
	assistant := assisting.NewService(reporter)
	practiceService := practice.NewService(locationRepo)
	syncService := scheduler.NewSnapshotSyncService(locationRepo, snapshotRepo, reporter, cfg)

	srv, err := New(cfg, reporter, assistant, practiceService, authenticator, syncService)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)
	assert.NotNil(t, srv.httpServer.Handler)
}

func TestPublicRoutesServeWithoutAToken(t *testing.T) {
	handler := newTestHandler(t)

	paths := []string{
		"/healthcheck",
		"/v1/analytics/metrics",
		"/v1/analytics/billing",
		"/v1/locations",
		"/v1/practice/config",
		"/v1/assistant/questions",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := perform(handler, http.MethodGet, path, "", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestPreflightShortCircuitsBeforeAuth(t *testing.T) {
	handler := newTestHandler(t)

	rec := perform(handler, http.MethodOptions, "/v1/users", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestUnknownRoutesAnswerWithTheErrorEnvelope(t *testing.T) {
	handler := newTestHandler(t)

	rec := perform(handler, http.MethodGet, "/v1/reports", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := decodeJSON(t, rec)
	assert.Equal(t, "SRV_003", body["code"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestWrongMethodAnswers405(t *testing.T) {
	handler := newTestHandler(t)

	rec := perform(handler, http.MethodDelete, "/v1/login", "", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "SRV_004", body["code"])
	assert.Equal(t, "Method not allowed", body["message"])
}

func TestLoginThenMe(t *testing.T) {
	handler := newTestHandler(t)

	token := loginAs(t, handler, "admin", "MDSdemo2025!")

	rec := perform(handler, http.MethodGet, "/v1/me", token, "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "admin", body["username"])
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestProtectedRouteRejectsGarbageTokens(t *testing.T) {
	handler := newTestHandler(t)

	rec := perform(handler, http.MethodGet, "/v1/me", "not-a-jwt", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "AUTH_004", body["code"])
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestUserListGating(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("anonymous callers are turned away", func(t *testing.T) {
		rec := perform(handler, http.MethodGet, "/v1/users", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_004", decodeJSON(t, rec)["code"])
	})

	t.Run("viewers lack the role", func(t *testing.T) {
		token := loginAs(t, handler, "frontdesk", "ViewOnly2025!")

		rec := perform(handler, http.MethodGet, "/v1/users", token, "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "AUTH_006", decodeJSON(t, rec)["code"])
	})

	t.Run("managers can read the roster", func(t *testing.T) {
		token := loginAs(t, handler, "officemgr", "RunTheDesk2025!")

		rec := perform(handler, http.MethodGet, "/v1/users", token, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var users []map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
		assert.Len(t, users, 3)
	})

	t.Run("admins can read the roster", func(t *testing.T) {
		token := loginAs(t, handler, "admin", "MDSdemo2025!")

		rec := perform(handler, http.MethodGet, "/v1/users", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCronStatusGating(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("managers are refused", func(t *testing.T) {
		token := loginAs(t, handler, "officemgr", "RunTheDesk2025!")

		rec := perform(handler, http.MethodGet, "/v1/cron/status", token, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admins see the scheduler state", func(t *testing.T) {
		token := loginAs(t, handler, "admin", "MDSdemo2025!")

		rec := perform(handler, http.MethodGet, "/v1/cron/status", token, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeJSON(t, rec), "snapshots")
	})
}

func TestAssistantAnswersThroughTheFullStack(t *testing.T) {
	handler := newTestHandler(t)

	rec := perform(handler, http.MethodPost, "/v1/assistant/query",
		"", `{"question":"How is revenue trending this month?"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, true, body["matched"])
	answer, _ := body["answer"].(string)
	assert.Contains(t, answer, "Month-to-date revenue")
}
