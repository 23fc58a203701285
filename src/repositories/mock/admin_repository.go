package mock

import (
	"context"

	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	InsertFunc      func(ctx context.Context, admin *models.AdminAccount) error
	FindAnyFunc     func(ctx context.Context) (*models.AdminAccount, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.AdminAccount, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Insert(ctx context.Context, admin *models.AdminAccount) error {
	m.Calls["Insert"] = append(m.Calls["Insert"], admin)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) FindAny(ctx context.Context) (*models.AdminAccount, error) {
	m.Calls["FindAny"] = append(m.Calls["FindAny"], nil)
	if m.FindAnyFunc != nil {
		return m.FindAnyFunc(ctx)
	}
	return nil, nil
}

func (m *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	m.Calls["FindByEmail"] = append(m.Calls["FindByEmail"], email)
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
