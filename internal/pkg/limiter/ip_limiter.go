/*
Package limiter provides the token-bucket limiters used by the bot.

IPRateLimiter throttles status API callers per client IP and periodically forgets idle
callers. Reconnect (reconnect.go) spaces out whole connect attempts.
*/
package limiter

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"roombot/internal/pkg/errs"
	"roombot/internal/pkg/logx"
	"roombot/internal/pkg/resp"
)

// cleanupInterval is how often idle per-IP limiters are dropped.
const cleanupInterval = 3 * time.Minute

// IPRateLimiter limits requests per client IP address.
type IPRateLimiter struct {
	// mu protects limits.
	mu sync.RWMutex

	// limits maps a client IP to its token bucket.
	limits map[string]*rate.Limiter

	r rate.Limit
	b int
}

// NewIPRateLimiter creates an IPRateLimiter with rate r and burst b.
// Idle limiters are cleaned up until ctx is done.
func NewIPRateLimiter(ctx context.Context, r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
	}

	go i.cleanUpVisitors(ctx)

	return i
}

// GetLimiter returns the limiter for ip, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	l, exists := i.limits[ip]
	i.mu.RUnlock()

	if exists {
		return l
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	l, exists = i.limits[ip]
	if !exists {
		l = rate.NewLimiter(i.r, i.b)
		i.limits[ip] = l
	}
	return l
}

// Len returns the number of tracked IPs.
func (i *IPRateLimiter) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.limits)
}

// sweep drops limiters whose bucket has refilled completely.
func (i *IPRateLimiter) sweep(now time.Time) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	removed := 0
	for ip, l := range i.limits {
		if l.TokensAt(now) >= float64(l.Burst()) {
			delete(i.limits, ip)
			removed++
		}
	}
	return removed
}

func (i *IPRateLimiter) cleanUpVisitors(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed := i.sweep(now)
			logx.Debug("Rate limiter cleanup finished.", "removed", removed, "active", i.Len())
		}
	}
}

// Middleware rejects requests over the limit with ErrRateLimited.
func (i *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !i.GetLimiter(ip).Allow() {
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimited))
			return
		}

		next.ServeHTTP(w, r)
	})
}
