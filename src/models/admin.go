package models

import "time"

// AdminAccount represents the single admin credential record.
// At most one account may ever exist; registration is rejected once any
// account is present.
type AdminAccount struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose
	RegisteredAt time.Time `json:"registered_at"`
}
