package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	guard := NewRequestGuard(3, time.Minute, func() time.Time { return now })
	handler := RateLimitMiddleware(nil, guard)(okHandler())

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/garden/plant", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100:1234"))
	assert.Equal(t, 4, guard.Requests("192.168.1.100"))

	// Other clients keep their own budget
	assert.Equal(t, http.StatusOK, send("192.168.1.101:1234"))

	// A new window resets the count
	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, send("192.168.1.100:1234"))
	assert.Equal(t, 1, guard.Requests("192.168.1.100"))
}

func TestRequestGuard_FailedAuthAlert(t *testing.T) {
	buf := captureLogs(t)
	guard := NewRequestGuard(RateLimitPerWindow, RateLimitWindow, nil)

	for i := 0; i < FailedAuthAlertThreshold-1; i++ {
		guard.RecordFailedAuth("203.0.113.7")
	}
	assert.NotContains(t, buf.String(), SecurityAlertFailedAuth)

	guard.RecordFailedAuth("203.0.113.7")
	assert.Contains(t, buf.String(), SecurityAlertFailedAuth)
}
