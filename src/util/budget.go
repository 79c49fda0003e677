package util

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysUntil returns the number of whole-or-partial days from now to end,
// rounded up, never negative.
func DaysUntil(end, now time.Time) int {
	diff := end.Sub(now)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// SuggestedDailyLimit spreads the unspent part of a budget evenly over the
// days left until its end date. Once the end date has passed the answer is 0.
func SuggestedDailyLimit(totalBudget, spent decimal.Decimal, end, now time.Time) decimal.Decimal {
	daysLeft := DaysUntil(end, now)
	if daysLeft <= 0 {
		return decimal.Zero
	}
	remaining := totalBudget.Sub(spent)
	return remaining.DivRound(decimal.NewFromInt(int64(daysLeft)), 2)
}
