package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID          string          `json:"id"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	EndDate     time.Time       `json:"endDate"`
	DailyLimit  decimal.Decimal `json:"dailyLimit"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BudgetOverview is the active budget plus figures derived from current spending.
type BudgetOverview struct {
	Budget              Budget          `json:"budget"`
	DaysRemaining       int             `json:"daysRemaining"`
	SuggestedDailyLimit decimal.Decimal `json:"suggestedDailyLimit"`
}
