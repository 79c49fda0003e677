package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMonobankToken(t *testing.T) {
	cases := []struct {
		name  string
		token string
		valid bool
	}{
		{"valid mixed token", "uXn2k9qL4mRt8vWz1yBc6dFg", true},
		{"valid with separators", "abc_def-ghi_jkl-mno_pqr", true},
		{"too short", "abc123", false},
		{"empty", "", false},
		{"illegal characters", "uXn2k9qL4mRt8vWz1yBc!@#$", false},
		{"whitespace", "uXn2k9qL4 mRt8vWz1yBc6dFg", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateMonobankToken(tc.token))
		})
	}
}

func TestExtractMerchantName(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"plain name", "Silpo", "Silpo"},
		{"leading card number", "4411 Silpo", "Silpo"},
		{"trailing date", "Silpo 03/15", "Silpo"},
		{"trailing time", "Silpo 14:30", "Silpo"},
		{"card number and date", "4411 Silpo 03/15", "Silpo"},
		{"surrounding spaces", "  Silpo  ", "Silpo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractMerchantName(tc.description))
		})
	}
}

func TestExtractMerchantNameCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 8; i++ {
		long += "Merchant"
	}
	got := ExtractMerchantName(long)
	assert.Len(t, got, 50)
}

func TestMCCLabel(t *testing.T) {
	assert.Equal(t, "Supermarkets", MCCLabel(5411))
	assert.Equal(t, "Restaurants", MCCLabel(5812))
	assert.Equal(t, "Pharmacies", MCCLabel(5912))
	assert.Equal(t, "MCC 9999", MCCLabel(9999))
}
