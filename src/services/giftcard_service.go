package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
)

// GiftCardService handles gift-card record operations
type GiftCardService struct {
	db   *database.Database
	repo repositories.GiftCardRepository
}

// NewGiftCardService creates a new gift-card service
func NewGiftCardService(db *database.Database) *GiftCardService {
	return &GiftCardService{db: db}
}

// NewGiftCardServiceWithRepo creates a new gift-card service with repository (for testing)
func NewGiftCardServiceWithRepo(repo repositories.GiftCardRepository) *GiftCardService {
	return &GiftCardService{repo: repo}
}

// CreateRecord persists one balance-check result. The record is immutable
// afterwards; cardName defaults to the placeholder when empty.
func (gs *GiftCardService) CreateRecord(ctx context.Context, cardType, cardName, fullCode string, balance float64) (*models.GiftCardRecord, error) {
	if cardName == "" {
		cardName = models.DefaultCardName
	}

	record := &models.GiftCardRecord{
		ID:          uuid.New(),
		CardType:    cardType,
		CardName:    cardName,
		FullCode:    fullCode,
		Balance:     balance,
		CheckDate:   time.Now(),
		CheckMethod: models.CheckMethodRealTime,
	}

	// Use repository if available (for testing)
	if gs.repo != nil {
		if err := gs.repo.Insert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create gift card record: %w", err)
		}
		return record, nil
	}

	_, err := gs.db.Exec(ctx,
		`INSERT INTO giftcards (id, card_type, card_name, full_code, balance, check_date, check_method)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.CardType, record.CardName, record.FullCode,
		record.Balance, record.CheckDate, record.CheckMethod,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gift card record: %w", err)
	}

	return record, nil
}

// ListRecords returns all stored records sorted by check date, newest first
func (gs *GiftCardService) ListRecords(ctx context.Context) ([]models.GiftCardRecord, error) {
	if gs.repo != nil {
		return gs.repo.List(ctx)
	}

	rows, err := gs.db.Query(ctx,
		`SELECT id, card_type, card_name, full_code, balance, check_date, check_method
		 FROM giftcards
		 ORDER BY check_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query gift card records: %w", err)
	}
	defer rows.Close()

	records := []models.GiftCardRecord{}
	for rows.Next() {
		var r models.GiftCardRecord
		err := rows.Scan(&r.ID, &r.CardType, &r.CardName, &r.FullCode, &r.Balance, &r.CheckDate, &r.CheckMethod)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gift card record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecord removes a record by ID. Returns ErrRecordNotFound when no row
// was deleted.
func (gs *GiftCardService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if gs.repo != nil {
		deleted, err := gs.repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete gift card record: %w", err)
		}
		if deleted == 0 {
			return ErrRecordNotFound
		}
		return nil
	}

	result, err := gs.db.Exec(ctx, "DELETE FROM giftcards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete gift card record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// CountRecords counts all stored records
func (gs *GiftCardService) CountRecords(ctx context.Context) (int, error) {
	if gs.repo != nil {
		return gs.repo.Count(ctx)
	}

	var count int
	err := gs.db.QueryRow(ctx, "SELECT COUNT(*) FROM giftcards").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count gift card records: %w", err)
	}

	return count, nil
}
