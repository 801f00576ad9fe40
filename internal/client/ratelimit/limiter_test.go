package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time         { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewLimiterWithClock(clock.now), clock
}

func TestFirstAttemptsAllowed(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		assert.False(t, l.Check("login", 5, time.Minute), "attempt %d", i+1)
	}
}

func TestSixthAttemptBlocked(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.Check("login", 5, time.Minute)
	}
	assert.True(t, l.Check("login", 5, time.Minute))
	assert.True(t, l.Check("login", 5, time.Minute))
}

func TestWindowElapsesFromFirstAttempt(t *testing.T) {
	l, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.Check("login", 5, time.Minute)
	}
	assert.True(t, l.Check("login", 5, time.Minute))

	clock.advance(time.Minute)
	assert.False(t, l.Check("login", 5, time.Minute), "new window should start")
}

func TestBlockedAttemptsDoNotExtendWindow(t *testing.T) {
	l, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.Check("login", 5, time.Minute)
	}

	// Hammering while blocked must not push the window start forward.
	clock.advance(30 * time.Second)
	assert.True(t, l.Check("login", 5, time.Minute))
	clock.advance(30 * time.Second)
	assert.False(t, l.Check("login", 5, time.Minute))
}

func TestClearResetsKey(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.Check("login", 5, time.Minute)
	}
	assert.True(t, l.Check("login", 5, time.Minute))

	l.Clear("login")
	assert.False(t, l.Check("login", 5, time.Minute))
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.Check("login", 5, time.Minute)
	}
	assert.True(t, l.Check("login", 5, time.Minute))
	assert.False(t, l.Check("reset", 5, time.Minute))
}
