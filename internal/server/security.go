package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/logger"
)

// AuthMiddleware validates the X-API-Key header. An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *RequestGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				guard.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestGuard counts requests and failed logins per IP over a fixed window
type RequestGuard struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	now         func() time.Time
	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
}

// NewRequestGuard allows limit requests per IP per window. A nil now uses time.Now.
func NewRequestGuard(limit int, window time.Duration, now func() time.Time) *RequestGuard {
	if now == nil {
		now = time.Now
	}
	return &RequestGuard{
		limit:       limit,
		window:      window,
		now:         now,
		windowStart: now(),
		requests:    make(map[string]int),
		failedAuth:  make(map[string]int),
	}
}

// RecordFailedAuth counts a failed login and alerts once the threshold is reached
func (g *RequestGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollWindow()
	g.failedAuth[ip]++
	if n := g.failedAuth[ip]; n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// Allow counts a request and reports whether ip is still within its limit
func (g *RequestGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollWindow()
	g.requests[ip]++
	n := g.requests[ip]
	if n <= g.limit {
		return true
	}
	// one alert per hundred blocked requests
	if n%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// Requests is the number of requests counted for ip in the current window
func (g *RequestGuard) Requests(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rollWindow()
	return g.requests[ip]
}

// rollWindow starts a new window once the current one has elapsed. Caller holds mu.
func (g *RequestGuard) rollWindow() {
	if now := g.now(); now.Sub(g.windowStart) > g.window {
		clear(g.requests)
		clear(g.failedAuth)
		g.windowStart = now
	}
}

// RateLimitMiddleware rejects requests from IPs over their limit with 429
func RateLimitMiddleware(trustedProxies []string, guard *RequestGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !guard.Allow(ip) {
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only when
// the direct peer is a trusted proxy, and then its rightmost entry is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
