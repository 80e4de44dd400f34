package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runRateLimited(t *testing.T, limiter echo.MiddlewareFunc, ip string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := RateLimiterWithConfig(1, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, runRateLimited(t, limiter, "10.0.0.1"))
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	limiter := RateLimiterWithConfig(1, 2)

	assert.Equal(t, http.StatusOK, runRateLimited(t, limiter, "10.0.0.2"))
	assert.Equal(t, http.StatusOK, runRateLimited(t, limiter, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, runRateLimited(t, limiter, "10.0.0.2"))
}

func TestRateLimiter_TracksPerIP(t *testing.T) {
	limiter := RateLimiterWithConfig(1, 1)

	assert.Equal(t, http.StatusOK, runRateLimited(t, limiter, "10.0.0.3"))
	assert.Equal(t, http.StatusTooManyRequests, runRateLimited(t, limiter, "10.0.0.3"))

	// A different client is not affected
	assert.Equal(t, http.StatusOK, runRateLimited(t, limiter, "10.0.0.4"))
}

func TestGetIP_PrefersForwardedHeaders(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "203.0.113.8")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "203.0.113.7", getIP(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.8")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "203.0.113.8", getIP(c))
}
