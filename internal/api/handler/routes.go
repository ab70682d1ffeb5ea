package handler

import (
	"net/http"

	"github.com/mdsai/analytics-api/internal/api/handler/router"
	"github.com/mdsai/analytics-api/internal/usecases/assisting"
	"github.com/mdsai/analytics-api/internal/usecases/authenticating"
	"github.com/mdsai/analytics-api/internal/usecases/practice"
	"github.com/mdsai/analytics-api/internal/usecases/reporting"
	"github.com/mdsai/analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Analytics routes stay open: the dashboard renders them before anyone logs
// in.
func Analytics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/:report",
			Method:  http.MethodGet,
			Handler: GetAnalyticsReport(service),
		},
	}
}

func Locations(service practice.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/locations",
			Method:  http.MethodGet,
			Handler: ListLocations(service),
		},
	}
}

func Assistant(service assisting.Assistant) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/assistant/questions",
			Method:  http.MethodGet,
			Handler: GetPopularQuestions(service),
		},
		{
			Path:    "/v1/assistant/query",
			Method:  http.MethodPost,
			Handler: QueryAssistant(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Practice config routes stay open like the analytics routes; updates are
// memory-only and reset on restart.
func Practice(service practice.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/practice/config",
			Method:  http.MethodGet,
			Handler: GetPracticeConfig(service),
		},
		{
			Path:    "/v1/practice/config",
			Method:  http.MethodPut,
			Handler: UpdatePracticeConfig(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
