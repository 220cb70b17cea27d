package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(IPRateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.POST("/decode", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postFrom(router http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/decode", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestIPRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	router := newLimitedRouter(t, 10, 5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, postFrom(router, "192.0.2.1:1234").Code)
	}
}

func TestIPRateLimitMiddleware_BlocksWithRetryAfter(t *testing.T) {
	router := newLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, postFrom(router, "192.0.2.1:1234").Code)

	w := postFrom(router, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)
}

func TestIPRateLimitMiddleware_IndependentPerIP(t *testing.T) {
	router := newLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, postFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "192.0.2.2:1234").Code)
}

func TestIPLimiterStore_EvictOlderThan(t *testing.T) {
	store := &ipLimiterStore{rps: 1, burst: 1}

	stale := store.get("192.0.2.1")
	store.get("192.0.2.2")

	val, ok := store.limiters.Load("192.0.2.1")
	require.True(t, ok)
	val.(*ipLimiterEntry).lastAccess = time.Now().Add(-2 * time.Hour)

	store.evictOlderThan(time.Now().Add(-time.Hour))

	_, ok = store.limiters.Load("192.0.2.1")
	assert.False(t, ok)
	_, ok = store.limiters.Load("192.0.2.2")
	assert.True(t, ok)
	assert.NotSame(t, stale, store.get("192.0.2.1"))
}

func TestIPRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	_ = IPRateLimitMiddleware(ctx, 1, 1, discardLogger())
	cancel()
}
