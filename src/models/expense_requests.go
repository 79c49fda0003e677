package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Note            *string         `json:"note"`
	MonobankID      *string         `json:"monobankId"`
	IsFromMonobank  bool            `json:"isFromMonobank"`
	MerchantName    *string         `json:"merchantName"`
	MerchantType    *string         `json:"merchantType"`
	CategoryCode    *string         `json:"categoryCode"`
	TransactionTime *time.Time      `json:"transactionTime"`
	CardType        *string         `json:"cardType"`
}

// UpdateExpenseRequest carries the mutable expense fields. Nil means the
// field was not supplied, so an explicit zero amount is distinguishable
// from an omitted one.
type UpdateExpenseRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}
