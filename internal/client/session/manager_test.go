package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printflow/printflow/internal/client/models"
)

type fakeTimer struct {
	d       time.Duration
	fn      func()
	resets  int
	stopped bool
}

func (t *fakeTimer) Reset(d time.Duration) { t.d = d; t.resets++ }
func (t *fakeTimer) Stop()                 { t.stopped = true }

// fire simulates the timer elapsing.
func (t *fakeTimer) fire() { t.fn() }

type harness struct {
	store *MemoryStore
	mgr   *Manager
	timer *fakeTimer
	now   time.Time
}

func newHarness(t *testing.T, inactivity time.Duration) *harness {
	t.Helper()
	h := &harness{
		store: NewMemoryStore(),
		now:   time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	h.mgr = NewManagerWithClock(h.store, inactivity,
		func() time.Time { return h.now },
		func(d time.Duration, fn func()) Timer {
			h.timer = &fakeTimer{d: d, fn: fn}
			return h.timer
		})
	return h
}

func (h *harness) session(expiresIn time.Duration) models.Session {
	return models.Session{
		User:      models.User{ID: "u1", Name: "Ann", Email: "ann@printflow.test", Role: models.RoleAdmin},
		Token:     "tok-123",
		ExpiresAt: h.now.Add(expiresIn),
	}
}

func TestInitialState(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	assert.Equal(t, Unauthenticated, h.mgr.State())
	assert.Empty(t, h.mgr.Token())
	assert.Nil(t, h.mgr.Current())
}

func TestEstablish(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(30*time.Minute)))

	assert.Equal(t, Authenticated, h.mgr.State())
	assert.Equal(t, "tok-123", h.mgr.Token())
	require.NotNil(t, h.mgr.Current())
	assert.Equal(t, "ann@printflow.test", h.mgr.Current().Email)
	require.NotNil(t, h.timer)
	assert.Equal(t, 30*time.Minute, h.timer.d)
}

func TestRestoreValidSession(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	blob, err := json.Marshal(h.session(20 * time.Minute))
	require.NoError(t, err)
	require.NoError(t, h.store.Save(blob))

	h.mgr.Restore()
	assert.Equal(t, Authenticated, h.mgr.State())
	// Inactivity window is capped at the token's remaining lifetime.
	assert.Equal(t, 20*time.Minute, h.timer.d)
}

func TestRestoreEmptyStore(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	h.mgr.Restore()
	assert.Equal(t, Unauthenticated, h.mgr.State())
}

func TestRestoreCorruptBlob(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.store.Save([]byte("{not json")))

	h.mgr.Restore()
	assert.Equal(t, Unauthenticated, h.mgr.State())

	// The bad blob must be purged.
	blob, err := h.store.Load()
	require.NoError(t, err)
	assert.Empty(t, blob)
}

func TestRestoreExpiredSession(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	blob, err := json.Marshal(h.session(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, h.store.Save(blob))

	h.mgr.Restore()
	assert.Equal(t, Unauthenticated, h.mgr.State())
	assert.Empty(t, h.mgr.Token())
}

func TestTouchResetsInactivityTimer(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(2*time.Hour)))

	h.now = h.now.Add(10 * time.Minute)
	h.mgr.Touch()

	assert.Equal(t, 1, h.timer.resets)
	assert.Equal(t, 30*time.Minute, h.timer.d)
	assert.Equal(t, Authenticated, h.mgr.State())
}

func TestTouchDoesNotOutliveToken(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(40*time.Minute)))

	// 25 minutes in, only 15 minutes of token remain.
	h.now = h.now.Add(25 * time.Minute)
	h.mgr.Touch()
	assert.Equal(t, 15*time.Minute, h.timer.d)
}

func TestTouchAfterTokenExpiryExpiresSession(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(30*time.Minute)))

	var notice string
	h.mgr.OnExpired(func(n string) { notice = n })

	h.now = h.now.Add(31 * time.Minute)
	h.mgr.Touch()

	assert.Equal(t, Expired, h.mgr.State())
	assert.Equal(t, "Session expired", notice)
	assert.Empty(t, h.mgr.Token())
}

func TestInactivityTimerExpiresSession(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(2*time.Hour)))

	var notice string
	h.mgr.OnExpired(func(n string) { notice = n })

	h.timer.fire()

	assert.Equal(t, Expired, h.mgr.State())
	assert.Equal(t, "Session expired", notice)
	assert.Nil(t, h.mgr.Current())

	blob, err := h.store.Load()
	require.NoError(t, err)
	assert.Empty(t, blob, "expiry must purge the stored session")
}

func TestLogoutIsSilent(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(2*time.Hour)))

	called := false
	h.mgr.OnExpired(func(string) { called = true })

	h.mgr.Logout()

	assert.Equal(t, Unauthenticated, h.mgr.State())
	assert.False(t, called, "logout must not surface an expiry notice")
	assert.True(t, h.timer.stopped)
	assert.Empty(t, h.mgr.Token())

	blob, err := h.store.Load()
	require.NoError(t, err)
	assert.Empty(t, blob)
}

func TestTimerFireAfterLogoutIsIgnored(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(2*time.Hour)))
	timer := h.timer

	h.mgr.Logout()

	called := false
	h.mgr.OnExpired(func(string) { called = true })
	timer.fire()

	assert.Equal(t, Unauthenticated, h.mgr.State())
	assert.False(t, called)
}

func TestReloginAfterExpiry(t *testing.T) {
	h := newHarness(t, 30*time.Minute)
	require.NoError(t, h.mgr.Establish(h.session(30*time.Minute)))

	h.timer.fire()
	require.Equal(t, Expired, h.mgr.State())

	require.NoError(t, h.mgr.Establish(h.session(30*time.Minute)))
	assert.Equal(t, Authenticated, h.mgr.State())
	assert.Equal(t, "tok-123", h.mgr.Token())
}
