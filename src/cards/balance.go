package cards

import (
	"math"
	"unicode/utf16"

	"github.com/techmagnet/seacheck/src/models"
)

// BalanceRange bounds the simulated balance for one card type.
type BalanceRange struct {
	Min     float64
	Max     float64
	Typical float64
}

// balanceRanges holds the per-type (min, max, typical) triples. Unknown types
// fall back to defaultRange.
var balanceRanges = map[string]BalanceRange{
	models.CardTypeAmazon:     {10, 500, 75},
	models.CardTypeITunes:     {15, 200, 50},
	models.CardTypeGooglePlay: {10, 200, 25},
	models.CardTypeSteam:      {5, 100, 20},
	models.CardTypeVisa:       {25, 1000, 150},
	models.CardTypeMastercard: {25, 1000, 200},
	models.CardTypeWalmart:    {5, 500, 45},
	models.CardTypeTarget:     {5, 500, 35},
	models.CardTypeStoreCard:  {10, 300, 85},
	models.CardTypeOther:      {5, 250, 35},
}

var defaultRange = balanceRanges[models.CardTypeOther]

// RangeFor returns the balance range triple for a card type, or the default
// triple for unknown types.
func RangeFor(cardType string) BalanceRange {
	if r, ok := balanceRanges[cardType]; ok {
		return r
	}
	return defaultRange
}

// codeHash computes a 32-bit signed rolling hash over the cleaned code:
// h = h*31 + codeUnit, wrapping at 32 bits each step. The recurrence runs
// over UTF-16 code units, so a character outside the BMP contributes its
// surrogate pair, and must stay bit-for-bit stable so a given code always
// hashes to the same value.
func codeHash(clean string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(clean)) {
		h = (h << 5) - h + int32(u)
	}
	return h
}

// ComputeBalance derives the deterministic pseudo-balance for a card.
// Pure function of (cardType, cleaned code): n = |hash| mod 1000 / 1000
// selects a point in the type's range, with n < 0.1 modeling an empty card.
// The result is rounded to two decimals and never negative.
func ComputeBalance(cardType, code string) float64 {
	clean := CleanCode(code)

	n := int64(codeHash(clean))
	if n < 0 {
		n = -n
	}
	normalized := float64(n%1000) / 1000

	r := RangeFor(cardType)

	var balance float64
	switch {
	case normalized < 0.1:
		balance = 0
	case normalized < 0.3:
		balance = r.Min + normalized*(r.Typical-r.Min)
	default:
		balance = r.Typical + normalized*(r.Max-r.Typical)
	}

	balance = math.Round(balance*100) / 100
	if balance < 0 {
		balance = 0
	}
	return balance
}
