package util

import (
	"fmt"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateMonobankToken performs a basic shape check on a personal API token.
func ValidateMonobankToken(token string) bool {
	return len(token) >= 20 && tokenPattern.MatchString(token)
}

var (
	leadingCardNumber = regexp.MustCompile(`^\d+\s*`)
	trailingDate      = regexp.MustCompile(`\s*\d{2}/\d{2}$`)
	trailingTime      = regexp.MustCompile(`\s*\d{2}:\d{2}$`)
)

// ExtractMerchantName strips card numbers and date/time suffixes that banks
// prepend or append to statement descriptions, leaving the merchant name.
func ExtractMerchantName(description string) string {
	name := leadingCardNumber.ReplaceAllString(description, "")
	name = trailingDate.ReplaceAllString(name, "")
	name = trailingTime.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}

var mccLabels = map[int]string{
	5411: "Supermarkets",
	5812: "Restaurants",
	5541: "Gas stations",
	5814: "Fast food",
	5912: "Pharmacies",
	5311: "Department stores",
}

// MCCLabel returns a human-readable label for a merchant category code,
// falling back to the raw code for categories without a known name.
func MCCLabel(mcc int) string {
	if label, ok := mccLabels[mcc]; ok {
		return label
	}
	return fmt.Sprintf("MCC %d", mcc)
}
