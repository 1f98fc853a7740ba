package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCounter is an in-memory fixed-window counter with a controllable
// clock, mirroring the Redis INCR + EXPIRE behavior.
type fakeCounter struct {
	counts map[string]int64
	expiry map[string]time.Time
	now    time.Time
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{
		counts: make(map[string]int64),
		expiry: make(map[string]time.Time),
		now:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeCounter) hit(_ context.Context, key string, window time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if deadline, ok := f.expiry[key]; ok && !f.now.Before(deadline) {
		delete(f.counts, key)
		delete(f.expiry, key)
	}
	f.counts[key]++
	if _, ok := f.expiry[key]; !ok {
		f.expiry[key] = f.now.Add(window)
	}
	return f.counts[key], nil
}

func limitedRouter(hits counter, limit int, window time.Duration, handlerCalls *int) *gin.Engine {
	router := gin.New()
	router.POST("/submit", rateLimit(hits, limit, window, nil), func(c *gin.Context) {
		if handlerCalls != nil {
			*handlerCalls++
		}
		c.Status(http.StatusCreated)
	})
	return router
}

func postSubmit(router *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	router := gin.New()
	router.POST("/submit", RateLimit(nil, 10, time.Hour, nil), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 20; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/submit", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestRateLimit_OverLimitRejected(t *testing.T) {
	var handlerCalls int
	router := limitedRouter(newFakeCounter(), 3, time.Hour, &handlerCalls)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, postSubmit(router).Code)
	}

	w := postSubmit(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t,
		`{"success": false, "error": "too many submissions, please try again later"}`,
		w.Body.String())
	assert.Equal(t, 3, handlerCalls, "over-limit request must not reach the handler")
}

func TestRateLimit_FailsOpenOnBackendError(t *testing.T) {
	hits := newFakeCounter()
	hits.err = errors.New("connection refused")
	router := limitedRouter(hits, 1, time.Hour, nil)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, postSubmit(router).Code)
	}
}

func TestRateLimit_WindowExpiryResetsCount(t *testing.T) {
	hits := newFakeCounter()
	router := limitedRouter(hits, 1, time.Hour, nil)

	assert.Equal(t, http.StatusCreated, postSubmit(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, postSubmit(router).Code)

	hits.now = hits.now.Add(time.Hour + time.Minute)
	assert.Equal(t, http.StatusCreated, postSubmit(router).Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS("http://localhost:3000"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin echoed", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
