package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jimbaiko/Spendly/src/models"
)

// TodayExpenses returns the expenses created within the calendar day that
// contains now, midnight to midnight in now's location.
func TodayExpenses(expenses []models.Expense, now time.Time) []models.Expense {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var today []models.Expense
	for _, e := range expenses {
		created := e.CreatedAt.In(now.Location())
		if !created.Before(start) && created.Before(end) {
			today = append(today, e)
		}
	}
	return today
}

// TotalAmount sums expense amounts; zero for an empty set.
func TotalAmount(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// SourceBreakdown partitions expenses by origin. Every expense is counted
// exactly once, so the counts always sum to len(expenses).
func SourceBreakdown(expenses []models.Expense) models.SourceCounts {
	var counts models.SourceCounts
	for _, e := range expenses {
		if e.Imported() {
			counts.Monobank++
		} else {
			counts.Manual++
		}
	}
	return counts
}

// ComputeStats builds the stats bundle over the full expense collection.
// The result is deterministic for a fixed expense set and now instant.
func ComputeStats(expenses []models.Expense, now time.Time) models.Stats {
	today := TodayExpenses(expenses, now)
	return models.Stats{
		Total:      TotalAmount(expenses),
		Today:      TotalAmount(today),
		Count:      len(expenses),
		TodayCount: len(today),
		Sources:    SourceBreakdown(expenses),
	}
}
