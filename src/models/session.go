package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side session row. Only successful admin login creates
// one; logout deletes it. The client holds a signed cookie carrying the ID.
type Session struct {
	ID         uuid.UUID `json:"id"`
	Admin      bool      `json:"admin"`
	AdminEmail string    `json:"admin_email"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its absolute expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
