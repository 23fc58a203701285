package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
)

// SessionRepository is a mock implementation of repositories.SessionRepository
type SessionRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc        func(ctx context.Context, session *models.Session) error
	GetFunc           func(ctx context.Context, id uuid.UUID) (*models.Session, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewSessionRepository creates a new mock session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	m.Calls["Create"] = append(m.Calls["Create"], session)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	m.Calls["Get"] = append(m.Calls["Get"], id)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.Calls["DeleteExpired"] = append(m.Calls["DeleteExpired"], nil)
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

// Ensure SessionRepository implements the interface
var _ repositories.SessionRepository = (*SessionRepository)(nil)
