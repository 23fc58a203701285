package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/techmagnet/seacheck/src/models"
)

// GiftCardRepository defines the interface for gift-card record data access.
type GiftCardRepository interface {
	Insert(ctx context.Context, record *models.GiftCardRecord) error
	// List returns all records sorted by check date, newest first.
	List(ctx context.Context) ([]models.GiftCardRecord, error)
	// Delete removes a record by ID and returns the number of rows deleted.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int, error)
}

// AdminRepository defines the interface for the admin account record.
type AdminRepository interface {
	Insert(ctx context.Context, admin *models.AdminAccount) error
	// FindAny returns any existing admin account, or nil when none exists.
	FindAny(ctx context.Context) (*models.AdminAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
}

// SessionRepository defines the interface for server-side session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired purges sessions past their expiry and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
