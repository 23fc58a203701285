package cards

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techmagnet/seacheck/src/models"
)

func TestComputeBalance_Deterministic(t *testing.T) {
	codes := []string{"TEST123456789012", "4111111111111111", "ABCD-EFGHIJ-KLMN", "x", ""}
	for _, code := range codes {
		first := ComputeBalance(models.CardTypeVisa, code)
		second := ComputeBalance(models.CardTypeVisa, code)
		assert.Equal(t, first, second, "code %q", code)
	}
}

func TestComputeBalance_CleaningDoesNotChangeAmount(t *testing.T) {
	plain := ComputeBalance(models.CardTypeAmazon, "ABCDEFGHIJKLMN")
	formatted := ComputeBalance(models.CardTypeAmazon, " AB-CD EF-GHIJ-KLMN ")
	assert.Equal(t, plain, formatted)
}

func TestComputeBalance_WithinRange(t *testing.T) {
	types := []string{
		models.CardTypeAmazon, models.CardTypeITunes, models.CardTypeGooglePlay,
		models.CardTypeSteam, models.CardTypeVisa, models.CardTypeMastercard,
		models.CardTypeWalmart, models.CardTypeTarget, models.CardTypeStoreCard,
		models.CardTypeOther,
	}

	for _, cardType := range types {
		r := RangeFor(cardType)
		for i := 0; i < 500; i++ {
			code := fmt.Sprintf("CODE-%s-%04d", cardType, i)
			balance := ComputeBalance(cardType, code)

			require.GreaterOrEqual(t, balance, 0.0, "type %s code %s", cardType, code)
			require.LessOrEqual(t, balance, r.Max, "type %s code %s", cardType, code)

			// Two-decimal precision
			cents := balance * 100
			require.InDelta(t, math.Round(cents), cents, 1e-6, "type %s code %s", cardType, code)
		}
	}
}

func TestComputeBalance_EmptyCardBand(t *testing.T) {
	// Hand-computed hashes: "" -> 0, "A" -> 65, "AA" -> 2080. All normalize
	// below 0.1, the band modeling a used/empty card.
	assert.Equal(t, 0.0, ComputeBalance(models.CardTypeVisa, ""))
	assert.Equal(t, 0.0, ComputeBalance(models.CardTypeAmazon, "A"))
	assert.Equal(t, 0.0, ComputeBalance(models.CardTypeOther, "AA"))
}

func TestComputeBalance_KnownValue(t *testing.T) {
	// "ZZZZ" hashes to 2770560, so n = 0.560 and the amount lands in the
	// upper band: typical + n*(max-typical) = 35 + 0.56*215 for Other.
	assert.InDelta(t, 155.40, ComputeBalance(models.CardTypeOther, "ZZZZ"), 0.01)
}

func TestComputeBalance_UnknownTypeUsesDefaultRange(t *testing.T) {
	unknown := ComputeBalance("Gibberish", "SOME-CODE-HERE")
	other := ComputeBalance(models.CardTypeOther, "SOME-CODE-HERE")
	assert.Equal(t, other, unknown)
}

func TestCodeHash_UTF16CodeUnits(t *testing.T) {
	// A character outside the BMP contributes both halves of its surrogate
	// pair: U+1F600 encodes as 0xD83D 0xDE00, so h = 55357*31 + 56832.
	assert.Equal(t, int32(1772899), codeHash("\U0001F600"))
	assert.Equal(t, int32(1835364), codeHash("A\U0001F600"))
	assert.Equal(t, int32(65), codeHash("A"))
}

func TestRangeFor(t *testing.T) {
	assert.Equal(t, BalanceRange{25, 1000, 150}, RangeFor(models.CardTypeVisa))
	assert.Equal(t, BalanceRange{5, 250, 35}, RangeFor("whatever"))
}
