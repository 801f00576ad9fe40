// Package ratelimit provides a fixed-window attempt limiter used to slow
// down repeated login attempts on the client. It is advisory only: the
// server remains the authority on credential checking.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// Limiter counts attempts per key within a fixed window measured from the
// first attempt. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	now     func() time.Time
	windows map[string]*window
}

func NewLimiter() *Limiter {
	return &Limiter{now: time.Now, windows: make(map[string]*window)}
}

// NewLimiterWithClock is like NewLimiter with an injected time source.
func NewLimiterWithClock(now func() time.Time) *Limiter {
	return &Limiter{now: now, windows: make(map[string]*window)}
}

// Check records an attempt for key and reports whether it is blocked.
//
// A fresh key, or one whose window has elapsed, starts a new window with
// count 1 and is not blocked. Once the count reaches maxAttempts within the
// window, further attempts are blocked and the count is not incremented, so
// the window is not extended by blocked attempts.
func (l *Limiter) Check(key string, maxAttempts int, win time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= win {
		l.windows[key] = &window{count: 1, start: now}
		return false
	}

	if w.count >= maxAttempts {
		return true
	}

	w.count++
	return false
}

// Clear forgets all attempts for key.
func (l *Limiter) Clear(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}
