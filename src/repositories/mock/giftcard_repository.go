package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
)

// GiftCardRepository is a mock implementation of repositories.GiftCardRepository
type GiftCardRepository struct {
	// Function stubs that can be overridden in tests
	InsertFunc func(ctx context.Context, record *models.GiftCardRecord) error
	ListFunc   func(ctx context.Context) ([]models.GiftCardRecord, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	CountFunc  func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewGiftCardRepository creates a new mock gift-card repository
func NewGiftCardRepository() *GiftCardRepository {
	return &GiftCardRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *GiftCardRepository) Insert(ctx context.Context, record *models.GiftCardRecord) error {
	m.Calls["Insert"] = append(m.Calls["Insert"], record)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, record)
	}
	return nil
}

func (m *GiftCardRepository) List(ctx context.Context) ([]models.GiftCardRecord, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.GiftCardRecord{}, nil
}

func (m *GiftCardRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

func (m *GiftCardRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure GiftCardRepository implements the interface
var _ repositories.GiftCardRepository = (*GiftCardRepository)(nil)
