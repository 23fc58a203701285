package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
)

// SessionService manages server-side admin sessions. Sessions are only
// created on successful login and carry an absolute expiry; lookups of
// expired or deleted sessions fail with ErrSessionNotFound.
type SessionService struct {
	db   *database.Database
	repo repositories.SessionRepository
	ttl  time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(db *database.Database, ttl time.Duration) *SessionService {
	return &SessionService{db: db, ttl: ttl}
}

// NewSessionServiceWithRepo creates a new session service with repository (for testing)
func NewSessionServiceWithRepo(repo repositories.SessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{repo: repo, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (ss *SessionService) TTL() time.Duration {
	return ss.ttl
}

// CreateAdminSession creates an authenticated session for the admin
func (ss *SessionService) CreateAdminSession(ctx context.Context, adminEmail string) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		ID:         uuid.New(),
		Admin:      true,
		AdminEmail: adminEmail,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ss.ttl),
	}

	if ss.repo != nil {
		if err := ss.repo.Create(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		return session, nil
	}

	_, err := ss.db.Exec(ctx,
		`INSERT INTO sessions (id, is_admin, admin_email, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.Admin, session.AdminEmail, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession loads a live session by ID
func (ss *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	if ss.repo != nil {
		session, err := ss.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if session == nil || session.Expired(time.Now()) {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session := &models.Session{}
	err := ss.db.QueryRow(ctx,
		`SELECT id, is_admin, admin_email, created_at, expires_at
		 FROM sessions
		 WHERE id = $1 AND expires_at > NOW()`,
		id,
	).Scan(&session.ID, &session.Admin, &session.AdminEmail, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

// DestroySession deletes a session. Deleting an unknown session is not an
// error; logout is idempotent.
func (ss *SessionService) DestroySession(ctx context.Context, id uuid.UUID) error {
	if ss.repo != nil {
		return ss.repo.Delete(ctx, id)
	}

	_, err := ss.db.Exec(ctx, "DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions purges sessions past their expiry
func (ss *SessionService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	if ss.repo != nil {
		return ss.repo.DeleteExpired(ctx)
	}

	result, err := ss.db.Exec(ctx, "DELETE FROM sessions WHERE expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}
