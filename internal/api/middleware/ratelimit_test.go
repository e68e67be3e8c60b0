package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(rate.Limit(0), 2)
	e.GET("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Middleware())

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_PerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(rate.Limit(0), 1)
	e.GET("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Middleware())

	first := httptest.NewRequest(http.MethodGet, "/limited", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different IP gets its own bucket.
	second := httptest.NewRequest(http.MethodGet, "/limited", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}
