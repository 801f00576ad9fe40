package models

import "time"

// Session is the authenticated client state: the logged-in user, the bearer
// token, and the token's absolute expiry. The expiry is fixed at issuance and
// never extended by activity.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the session is usable at the given time.
func (s *Session) Valid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}
