package models

import "github.com/shopspring/decimal"

type SourceCounts struct {
	Manual   int `json:"manual"`
	Monobank int `json:"monobank"`
}

// Stats is the aggregate spending bundle returned alongside expense lists.
// It is recomputed from the full expense collection on every read.
type Stats struct {
	Total      decimal.Decimal `json:"total"`
	Today      decimal.Decimal `json:"today"`
	Count      int             `json:"count"`
	TodayCount int             `json:"todayCount"`
	Sources    SourceCounts    `json:"sources"`
}

// SyncResult summarizes one reconciliation run.
type SyncResult struct {
	Added   int       `json:"added"`
	Skipped int       `json:"skipped"`
	Total   int       `json:"total"`
	Period  string    `json:"period"`
	Preview []Expense `json:"preview"`
}
