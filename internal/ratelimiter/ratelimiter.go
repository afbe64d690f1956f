package ratelimiter

import (
	"sync"
	"time"
)

// Result is the outcome of a single rate limit check. Limit, Remaining and
// Reset are populated on both allowed and denied outcomes so the HTTP layer
// can always emit X-RateLimit-* headers.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration
}

type clientWindow struct {
	count       int
	windowStart time.Time
}

// Limiter counts requests per client identifier within a fixed window.
// Check-and-increment runs under a single mutex so concurrent requests from
// the same client never lose increments.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string]*clientWindow

	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		limit:    limit,
		window:   window,
		clients:  make(map[string]*clientWindow),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	go l.cleanup()

	return l
}

// Check records a request for clientID and reports whether it is allowed.
// A missing or expired window resets to count=1; otherwise the count is
// incremented until the limit is reached.
func (l *Limiter) Check(clientID string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	cw, exists := l.clients[clientID]
	if !exists || now.Sub(cw.windowStart) >= l.window {
		cw = &clientWindow{count: 1, windowStart: now}
		l.clients[clientID] = cw
		return l.result(cw, true)
	}

	if cw.count < l.limit {
		cw.count++
		return l.result(cw, true)
	}

	return l.result(cw, false)
}

// Limit returns the configured per-window request limit.
func (l *Limiter) Limit() int {
	return l.limit
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

func (l *Limiter) result(cw *clientWindow, allowed bool) Result {
	reset := cw.windowStart.Add(l.window)

	remaining := l.limit - cw.count
	if remaining < 0 {
		remaining = 0
	}

	r := Result{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     reset,
	}

	if !allowed {
		r.RetryAfter = reset.Sub(l.now())
	}

	return r
}

// cleanup periodically evicts expired windows so idle clients do not pin
// memory forever.
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for id, cw := range l.clients {
				if now.Sub(cw.windowStart) >= l.window {
					delete(l.clients, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
