package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckMethodRealTime tags records produced by the simulated real-time lookup.
const CheckMethodRealTime = "real-time"

// DefaultCardName is used when the client does not name the card.
const DefaultCardName = "Unnamed Card"

// GiftCardRecord represents one stored balance-check result.
// Records are immutable after creation; only admin delete removes them.
type GiftCardRecord struct {
	ID          uuid.UUID `json:"id"`
	CardType    string    `json:"card_type"`
	CardName    string    `json:"card_name"`
	FullCode    string    `json:"full_code"`
	Balance     float64   `json:"balance"`
	CheckDate   time.Time `json:"check_date"`
	CheckMethod string    `json:"check_method"`
}
