package models

// Card type labels returned by the classifier. CardTypeOther is the
// catch-all for codes matching no known pattern.
const (
	CardTypeAmazon     = "Amazon"
	CardTypeITunes     = "iTunes"
	CardTypeGooglePlay = "Google Play"
	CardTypeSteam      = "Steam"
	CardTypeVisa       = "Visa"
	CardTypeMastercard = "Mastercard"
	CardTypeWalmart    = "Walmart"
	CardTypeTarget     = "Target"
	CardTypeStoreCard  = "Store Card"
	CardTypeOther      = "Other"
)
