package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"cosmos-server/internal/shared/config"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

// RateLimiter keeps one token bucket per client IP. Requests consume a per-route cost,
// so a full galaxy or region costs more than a single planet.
type RateLimiter struct {
	config  config.RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		config:  cfg,
		clients: make(map[string]*rate.Limiter),
		stop:    make(chan struct{}),
	}

	if cfg.Enabled {
		go rl.cleanupClients(time.Minute)
	}

	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.clients[ip]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists = rl.clients[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.BurstSize)
	rl.clients[ip] = limiter
	return limiter
}

func (rl *RateLimiter) cleanupClients(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

// evictIdle drops clients whose bucket has refilled completely.
func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, limiter := range rl.clients {
		if limiter.TokensAt(now) >= float64(rl.config.BurstSize) {
			delete(rl.clients, ip)
		}
	}
}

// Limit returns middleware charging cost tokens per request.
func (rl *RateLimiter) Limit(cost int) func(http.Handler) http.Handler {
	return rl.LimitBy(func(*http.Request) int { return cost })
}

// LimitBy returns middleware charging the tokens costOf reports for each request. A cost
// above the burst size is always rejected.
func (rl *RateLimiter) LimitBy(costOf func(*http.Request) int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.config.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			cost := max(1, costOf(r))
			ip := getClientIP(r, rl.config.TrustProxy)
			if !rl.getLimiter(ip).AllowN(time.Now(), cost) {
				logger := slog.With(
					"middleware", "rate_limit",
					"client_ip", ip,
					"cost", cost,
					"requests_per_second", rl.config.RequestsPerSecond,
					"burst_size", rl.config.BurstSize,
				)
				w.Header().Set("Retry-After", "1")
				response.Error(w, r, logger, errors.RateLimited("rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Middleware charges one token per request.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return rl.Limit(1)(next)
}

func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// first entry is the client
			if i := strings.IndexByte(xff, ','); i != -1 {
				return strings.TrimSpace(xff[:i])
			}
			return strings.TrimSpace(xff)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
