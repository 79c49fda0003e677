package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceManual   = "manual"
	SourceMonobank = "monobank"
)

type Expense struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Note            *string         `json:"note"`
	Source          string          `json:"source"`
	MonobankID      *string         `json:"monobankId,omitempty"`
	MerchantName    *string         `json:"merchantName,omitempty"`
	MerchantType    *string         `json:"merchantType,omitempty"`
	CategoryCode    *string         `json:"categoryCode,omitempty"`
	TransactionTime *time.Time      `json:"transactionTime,omitempty"`
	CardType        *string         `json:"cardType,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Imported reports whether the expense came from a bank sync rather than
// manual entry.
func (e *Expense) Imported() bool {
	return e.Source == SourceMonobank
}
