// Package quota applies per-minute and per-day limits to analysis LLM
// calls. It is in-memory: a single API instance is assumed and counters
// reset on restart.
package quota

import (
	"context"
	"sync"
	"time"

	"prompt-judge/config"
)

// AnalysisQuotaLimiter manages the per-minute/per-day budget for model
// calls made by the analyze endpoint.
type AnalysisQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewFromConfig builds a limiter from the analysis_quota section of
// config.yaml. Values of zero or below disable the corresponding limit.
func NewFromConfig(cfg config.AppConfig) *AnalysisQuotaLimiter {
	q := cfg.AnalysisQuota

	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &AnalysisQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve applies the limits before a model call.
//   - Daily budget exhausted: returns (false, nil); the caller must skip
//     the model call.
//   - Context cancelled while waiting out the per-minute interval:
//     returns (false, ctx.Err()).
func (l *AnalysisQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = nextAllowed.Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
			// re-evaluate under the lock
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
