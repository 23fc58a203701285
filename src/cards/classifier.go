// Package cards holds the pure gift-card logic: card-type classification and
// the deterministic pseudo-balance derivation.
package cards

import (
	"regexp"
	"strings"

	"github.com/techmagnet/seacheck/src/models"
)

// rule pairs a card-type label with its match criteria. Digit formats match
// by regexp alone; alphanumeric card formats additionally require at least
// one letter so that plain card numbers fall through to the digit rules.
type rule struct {
	label         string
	pattern       *regexp.Regexp
	requireLetter bool
}

// classifierRules is evaluated in declaration order and the first match wins.
// The order is load-bearing: post-cleaning, several patterns overlap (Walmart,
// Target and Store Card are numerically indistinguishable; Google Play is
// shadowed by iTunes) and the earlier-declared rule takes the code. Do not
// reorder.
var classifierRules = []rule{
	{models.CardTypeAmazon, regexp.MustCompile(`^[A-Za-z0-9]{14}$`), true},
	{models.CardTypeITunes, regexp.MustCompile(`^[A-Za-z0-9]{16}$`), true},
	{models.CardTypeGooglePlay, regexp.MustCompile(`^[A-Za-z0-9]{16}$`), true},
	{models.CardTypeSteam, regexp.MustCompile(`^[A-Za-z0-9]{15}$`), true},
	{models.CardTypeVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`), false},
	{models.CardTypeMastercard, regexp.MustCompile(`^5[1-5][0-9]{14}$`), false},
	{models.CardTypeWalmart, regexp.MustCompile(`^[0-9]{16}$`), false},
	{models.CardTypeTarget, regexp.MustCompile(`^[0-9]{16}$`), false},
	{models.CardTypeStoreCard, regexp.MustCompile(`^[0-9]{13,19}$`), false},
}

// CleanCode strips whitespace and hyphens from a submitted code. All matching
// and hashing operates on the cleaned form.
func CleanCode(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '-':
			return -1
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
			return -1
		}
		return r
	}, code)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// DetectCardType classifies a raw code into one of the card-type labels.
// Returns models.CardTypeOther when no rule matches.
func DetectCardType(code string) string {
	clean := CleanCode(code)
	for _, r := range classifierRules {
		if !r.pattern.MatchString(clean) {
			continue
		}
		if r.requireLetter && !containsLetter(clean) {
			continue
		}
		return r.label
	}
	return models.CardTypeOther
}
