package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := SecurityHeaders()(okHandler)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	err := handler(echo.New().NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/api/v1/kpis/daily").Header()

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
}

func TestSecurityHeadersMetricsEndpoint(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/metrics").Header()

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Empty(t, headers.Get("Cache-Control"))
}
