package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ledger-analytics/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(rps float64, burst int) (*RateLimiter, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: rps, Burst: burst, ExpiresIn: 3 * time.Minute})
	rl.now = func() time.Time { return now }
	return rl, &now
}

func hit(t *testing.T, handler echo.HandlerFunc, ip, xff string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/risk", nil)
	req.RemoteAddr = ip + ":12345"
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	rec := httptest.NewRecorder()

	assert.NoError(t, handler(echo.New().NewContext(req, rec)))
	return rec.Code
}

func okHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	rl, _ := newTestLimiter(2, 4)
	handler := okHandler(rl)

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, hit(t, handler, "192.168.1.2", ""), "request %d within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(t, handler, "192.168.1.2", ""))
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	rl, now := newTestLimiter(2, 1)
	handler := okHandler(rl)

	assert.Equal(t, http.StatusOK, hit(t, handler, "10.0.0.1", ""))
	assert.Equal(t, http.StatusTooManyRequests, hit(t, handler, "10.0.0.1", ""))

	*now = now.Add(500 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(t, handler, "10.0.0.1", ""))
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)
	handler := okHandler(rl)

	assert.Equal(t, http.StatusOK, hit(t, handler, "10.0.0.1", ""))
	assert.Equal(t, http.StatusTooManyRequests, hit(t, handler, "10.0.0.1", ""))
	assert.Equal(t, http.StatusOK, hit(t, handler, "10.0.0.2", ""))
}

func TestRateLimiter_UsesFirstForwardedAddress(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)
	handler := okHandler(rl)

	assert.Equal(t, http.StatusOK, hit(t, handler, "10.0.0.9", "203.0.113.5, 10.0.0.9"))
	assert.Equal(t, http.StatusTooManyRequests, hit(t, handler, "10.0.0.8", "203.0.113.5"))
	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	rl, now := newTestLimiter(1, 1)
	handler := okHandler(rl)

	hit(t, handler, "10.0.0.1", "")
	*now = now.Add(2 * time.Minute)
	hit(t, handler, "10.0.0.2", "")

	*now = now.Add(2 * time.Minute)
	rl.Cleanup()
	assert.Equal(t, 1, rl.visitorCount(), "only the visitor seen within three minutes remains")
}

func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	rl, _ := newTestLimiter(1, 10)
	handler := okHandler(rl)

	var wg sync.WaitGroup
	var mu sync.Mutex
	codes := map[int]int{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := hit(t, handler, "172.16.0.1", "")
			mu.Lock()
			codes[code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, codes[http.StatusOK])
	assert.Equal(t, 10, codes[http.StatusTooManyRequests])
}
