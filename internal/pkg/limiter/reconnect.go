package limiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Reconnect spaces out connect attempts: the first attempt is immediate, later ones wait
// until interval has passed since the previous one.
type Reconnect struct {
	limiter *rate.Limiter
}

// NewReconnect creates a Reconnect allowing one attempt per interval.
func NewReconnect(interval time.Duration) *Reconnect {
	return &Reconnect{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next attempt is allowed or ctx is done.
func (r *Reconnect) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
