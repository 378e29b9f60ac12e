package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var blocked int
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code == http.StatusTooManyRequests {
			blocked++
		}
	}

	assert.Greater(t, blocked, 0, "burst of 30 must trip the limiter")
}

func TestLimit_PerIPIsolation(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// exhaust one IP
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler(httptest.NewRecorder(), req, nil)
	}

	// a different IP still gets through
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvictIdle_KeepsActiveVisitors(t *testing.T) {
	rl := NewRateLimiter()
	rl.getLimiter("10.0.0.1:1234")
	rl.getLimiter("10.0.0.2:1234")

	// backdate one visitor past the idle window
	rl.mu.Lock()
	rl.visitors["10.0.0.1:1234"].lastSeen = time.Now().Add(-20 * time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(10 * time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1:1234")
	assert.Contains(t, rl.visitors, "10.0.0.2:1234")
}

func TestGetLimiter_ReusesBucketWhileActive(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.getLimiter("10.0.0.1:1234")
	// an exhausted bucket must stay exhausted on the next request, not be
	// replaced by a fresh one
	for first.Allow() {
	}
	second := rl.getLimiter("10.0.0.1:1234")

	require.Same(t, first, second)
	assert.False(t, second.Allow())
}
