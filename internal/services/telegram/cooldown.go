package telegram

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// pruneThreshold is the number of tracked users above which idle limiters
// are swept on the next Allow call.
const pruneThreshold = 1024

// Cooldown enforces a per-user minimum interval between command invocations.
type Cooldown struct {
	period   time.Duration
	now      func() time.Time
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

// NewCooldown returns a Cooldown allowing one invocation per period per user.
// A non-positive period disables it.
func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{
		period:   period,
		now:      time.Now,
		limiters: make(map[int64]*rate.Limiter),
	}
}

// Allow consumes the user's slot if available. Otherwise it returns false
// and the time left until the next invocation is permitted.
func (c *Cooldown) Allow(userID int64) (bool, time.Duration) {
	if c == nil || c.period <= 0 {
		return true, 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if len(c.limiters) > pruneThreshold {
		c.prune(now)
	}

	limiter, ok := c.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(c.period), 1)
		c.limiters[userID] = limiter
	}

	reservation := limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// prune drops limiters that have fully refilled; they behave the same as a
// fresh limiter. Callers hold c.mu.
func (c *Cooldown) prune(now time.Time) {
	for userID, limiter := range c.limiters {
		if limiter.TokensAt(now) >= 1 {
			delete(c.limiters, userID)
		}
	}
}
