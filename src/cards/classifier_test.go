package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/techmagnet/seacheck/src/models"
)

func TestDetectCardType(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"visa 16 digits", "4111111111111111", models.CardTypeVisa},
		{"visa 13 digits", "4111111111111", models.CardTypeVisa},
		{"visa with spaces and hyphens", " 4111-1111 1111-1111 ", models.CardTypeVisa},
		{"mastercard 51 prefix", "5111111111111111", models.CardTypeMastercard},
		{"mastercard 55 prefix", "5511111111111111", models.CardTypeMastercard},
		{"56 prefix is not mastercard", "5611111111111111", models.CardTypeWalmart},
		{"amazon 4-6-4 groups", "ABCD-EFGHIJ-KLMN", models.CardTypeAmazon},
		{"amazon lowercase", "abcd-efghij-klmn", models.CardTypeAmazon},
		{"itunes 16 alphanumeric", "X1Y2Z3A4B5C6D7E8", models.CardTypeITunes},
		{"steam 5-5-5 groups", "ABCDE-FGHIJ-KLMNO", models.CardTypeSteam},
		{"store card 13 digits", "1234567890123", models.CardTypeStoreCard},
		{"store card 19 digits", "1234567890123456789", models.CardTypeStoreCard},
		{"12 digits no match", "123456789012", models.CardTypeOther},
		{"20 digits no match", "12345678901234567890", models.CardTypeOther},
		{"non-alphanumeric", "ABCD*EFGHIJKLMN", models.CardTypeOther},
		{"empty", "", models.CardTypeOther},
		{"free text", "hello world", models.CardTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCardType(tt.code))
		})
	}
}

// A plain 16-digit number overlaps the Walmart, Target and Store Card rules.
// The earlier-declared rule must win, always.
func TestDetectCardType_NumericPrecedence(t *testing.T) {
	codes := []string{
		"1111111111111111",
		"9999999999999999",
		"1234567890123456",
		"6011111111111117",
	}
	for _, code := range codes {
		assert.Equal(t, models.CardTypeWalmart, DetectCardType(code), "code %s", code)
	}
}

// Digit rules must stay reachable: codes made only of digits never match the
// alphanumeric card formats even though their lengths overlap.
func TestDetectCardType_DigitsNeverMatchAlphanumericFormats(t *testing.T) {
	assert.Equal(t, models.CardTypeVisa, DetectCardType("4000000000000002"))
	assert.Equal(t, models.CardTypeStoreCard, DetectCardType("12345678901234"))  // 14 digits, not Amazon
	assert.Equal(t, models.CardTypeStoreCard, DetectCardType("123456789012345")) // 15 digits, not Steam
}

// Regression fixture: this exact code must keep classifying the same way.
func TestDetectCardType_RegressionFixture(t *testing.T) {
	assert.Equal(t, models.CardTypeITunes, DetectCardType("TEST123456789012"))
}

func TestCleanCode(t *testing.T) {
	assert.Equal(t, "ABCD1234", CleanCode(" AB-CD 12\t34\n"))
	assert.Equal(t, "", CleanCode(" - - "))
	assert.Equal(t, "abc", CleanCode("abc"))
}
