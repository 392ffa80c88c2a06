package ratelimit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"assurance/pkg/requestcontext"
)

func TestLimiterAllowsBurstThenBlocks(t *testing.T) {
	l := New(1, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, l.Allow("192.0.2.1", now))
	assert.True(t, l.Allow("192.0.2.1", now))
	assert.False(t, l.Allow("192.0.2.1", now))

	// other keys have their own bucket
	assert.True(t, l.Allow("192.0.2.2", now))

	// tokens refill over time
	assert.True(t, l.Allow("192.0.2.1", now.Add(time.Second)))
}

func TestNilLimiterAllowsEverything(t *testing.T) {
	l := New(0, 0)
	assert.Nil(t, l)
	assert.True(t, l.Allow("192.0.2.1", time.Now()))
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	l := New(1, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := l.Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	now := time.Now()
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/insurance", nil)
		ctx := requestcontext.WithClientMetadata(req.Context(), "198.51.100.9", "test")
		ctx = requestcontext.WithTime(ctx, now)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req.WithContext(ctx))
		return rr
	}

	assert.Equal(t, http.StatusOK, send().Code)
	rr := send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate_limited","error_description":"Too many requests"}`, rr.Body.String())
}
