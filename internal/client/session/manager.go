// Package session tracks the client's authentication state: restoring a
// persisted session at startup, establishing one after login, expiring it on
// inactivity or token expiry, and clearing it on logout.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/printflow/printflow/internal/client/models"
)

// State is the client's authentication state.
type State int

const (
	Unauthenticated State = iota
	Restoring
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Reset(d time.Duration)
	Stop()
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) Reset(d time.Duration) { r.t.Reset(d) }
func (r *realTimer) Stop()                 { r.t.Stop() }

func newRealTimer(d time.Duration, fn func()) Timer {
	return &realTimer{t: time.AfterFunc(d, fn)}
}

// Manager owns the session state machine. All methods are safe for
// concurrent use. The inactivity timer is rearmed by Touch; the token's
// absolute expiry is fixed at login and caps every rearm, so activity never
// extends a session past its token.
type Manager struct {
	mu         sync.Mutex
	store      Store
	inactivity time.Duration
	now        func() time.Time
	newTimer   func(d time.Duration, fn func()) Timer
	onExpired  func(notice string)

	state   State
	session *models.Session
	timer   Timer
}

func NewManager(store Store, inactivity time.Duration) *Manager {
	return &Manager{
		store:      store,
		inactivity: inactivity,
		now:        time.Now,
		newTimer:   newRealTimer,
		state:      Unauthenticated,
	}
}

// NewManagerWithClock is like NewManager with injected time sources.
func NewManagerWithClock(store Store, inactivity time.Duration,
	now func() time.Time, newTimer func(d time.Duration, fn func()) Timer) *Manager {
	m := NewManager(store, inactivity)
	m.now = now
	m.newTimer = newTimer
	return m
}

// OnExpired registers a callback invoked (outside the lock) when the session
// expires through inactivity or token expiry. Logout does not trigger it.
func (m *Manager) OnExpired(fn func(notice string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpired = fn
}

// Restore loads a previously persisted session. A missing, malformed, or
// expired blob is purged and leaves the manager unauthenticated; no error is
// surfaced to the user for a bad blob.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Restoring

	blob, err := m.store.Load()
	if err != nil || len(blob) == 0 {
		m.resetLocked(Unauthenticated)
		return
	}

	var s models.Session
	if err := json.Unmarshal(blob, &s); err != nil || !s.Valid(m.now()) {
		m.resetLocked(Unauthenticated)
		return
	}

	m.session = &s
	m.state = Authenticated
	m.armTimerLocked()
}

// Establish stores a freshly authenticated session and arms the inactivity
// timer.
func (m *Manager) Establish(s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := json.Marshal(&s)
	if err != nil {
		return err
	}
	if err := m.store.Save(blob); err != nil {
		return err
	}

	m.session = &s
	m.state = Authenticated
	m.armTimerLocked()
	return nil
}

// Touch signals user activity. It rearms the inactivity timer without moving
// the token's absolute expiry; if the token has already expired the session
// expires immediately.
func (m *Manager) Touch() {
	m.mu.Lock()
	if m.state != Authenticated {
		m.mu.Unlock()
		return
	}
	if !m.session.Valid(m.now()) {
		m.expireLocked("Session expired")
		return // expireLocked released the lock
	}
	m.armTimerLocked()
	m.mu.Unlock()
}

// Logout is a silent total reset: no expiry notice, nothing retained.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked(Unauthenticated)
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the logged-in user, or nil.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		return nil
	}
	u := m.session.User
	return &u
}

// Token returns the bearer token for API calls, or "" when there is no live
// session. Implements the API client's TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated || !m.session.Valid(m.now()) {
		return ""
	}
	return m.session.Token
}

// armTimerLocked (re)arms the inactivity timer, capped by the time remaining
// until the token's absolute expiry.
func (m *Manager) armTimerLocked() {
	d := m.inactivity
	if remaining := m.session.ExpiresAt.Sub(m.now()); remaining < d {
		d = remaining
	}
	if m.timer != nil {
		m.timer.Reset(d)
		return
	}
	m.timer = m.newTimer(d, m.timerFired)
}

func (m *Manager) timerFired() {
	m.mu.Lock()
	if m.state != Authenticated {
		m.mu.Unlock()
		return
	}
	m.expireLocked("Session expired")
}

// expireLocked transitions to Expired, purges everything, and notifies.
// It releases the lock before invoking the callback.
func (m *Manager) expireLocked(notice string) {
	m.resetLocked(Expired)
	fn := m.onExpired
	m.mu.Unlock()
	if fn != nil {
		fn(notice)
	}
}

func (m *Manager) resetLocked(to State) {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.session = nil
	m.state = to
	_ = m.store.Clear()
}
