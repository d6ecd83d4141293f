package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(t, e, handler, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, doRequest(t, e, handler, "10.0.0.1"))
}

func TestRateLimitMiddleware_RejectsBeyondBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	doRequest(t, e, handler, "10.0.0.2")
	doRequest(t, e, handler, "10.0.0.2")
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, e, handler, "10.0.0.2"))
}

func TestRateLimitMiddleware_PerIPBuckets(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 1)

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(t, e, handler, "10.0.0.3"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, e, handler, "10.0.0.3"))

	// A different client is unaffected
	assert.Equal(t, http.StatusOK, doRequest(t, e, handler, "10.0.0.4"))
}
