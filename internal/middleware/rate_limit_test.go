package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cosmos-server/internal/shared/config"
)

func serve(h http.Handler, remote string, headers map[string]string) int {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remote
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec.Code
}

func TestRateLimiter_Cost(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 5})
	defer rl.Stop()

	galaxy := rl.Limit(3)(okHandler)
	planet := rl.Middleware(okHandler)

	assert.Equal(t, http.StatusOK, serve(galaxy, "10.0.0.1:1000", nil))
	assert.Equal(t, http.StatusTooManyRequests, serve(galaxy, "10.0.0.1:1001", nil))
	assert.Equal(t, http.StatusOK, serve(planet, "10.0.0.1:1002", nil))
	assert.Equal(t, http.StatusOK, serve(planet, "10.0.0.1:1003", nil))
	assert.Equal(t, http.StatusTooManyRequests, serve(planet, "10.0.0.1:1004", nil))

	assert.Equal(t, http.StatusOK, serve(galaxy, "10.0.0.2:1000", nil), "other clients have their own bucket")
}

func TestRateLimiter_Response(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 1})
	defer rl.Stop()
	h := rl.Middleware(okHandler)
	serve(h, "10.0.0.1:1", nil)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:2"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"rate_limited"`)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, BurstSize: 1})
	defer rl.Stop()
	h := rl.Limit(10)(okHandler)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1", nil))
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, BurstSize: 2})
	defer rl.Stop()

	rl.getLimiter("10.0.0.1").AllowN(time.Now(), 2)
	rl.getLimiter("10.0.0.2")

	rl.evictIdle(time.Now())
	assert.Len(t, rl.clients, 1)

	rl.evictIdle(time.Now().Add(time.Minute))
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, BurstSize: 1})
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		trust   bool
		headers map[string]string
		want    string
	}{
		{"RemoteAddr", false, nil, "192.168.1.1"},
		{"IgnoresHeadersWithoutTrust", false, map[string]string{"X-Forwarded-For": "1.2.3.4"}, "192.168.1.1"},
		{"ForwardedFor", true, map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "1.2.3.4"},
		{"RealIP", true, map[string]string{"X-Real-IP": "5.6.7.8"}, "5.6.7.8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(r, tt.trust))
		})
	}
}

func TestRateLimiter_LimitBy(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 10})
	defer rl.Stop()

	h := rl.LimitBy(func(r *http.Request) int {
		if r.Header.Get("X-Cost") == "big" {
			return 8
		}
		return 0
	})(okHandler)

	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1", map[string]string{"X-Cost": "big"}))
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "10.0.0.1:2", map[string]string{"X-Cost": "big"}))
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:3", nil), "costs below one are charged one token")
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:4", nil))
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "10.0.0.1:5", nil))
}
