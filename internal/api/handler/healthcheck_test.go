package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsai/analytics-api/internal/api/handler/router"
)

func TestHealthcheck(t *testing.T) {
	handler := router.New(router.WithRoutes(Healthcheck()...))

	rec := performRequest(handler, http.MethodGet, "/healthcheck")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["time"])
}
