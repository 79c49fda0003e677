package models

import "github.com/shopspring/decimal"

// MonobankAccount is the client-facing view of a bank account, with
// balances converted from minor units.
type MonobankAccount struct {
	ID           string          `json:"id"`
	SendID       string          `json:"sendId"`
	Balance      decimal.Decimal `json:"balance"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Type         string          `json:"type"`
	CurrencyCode int             `json:"currencyCode"`
	CashbackType string          `json:"cashbackType"`
	MaskedPan    []string        `json:"maskedPan"`
	IBAN         string          `json:"iban"`
}
