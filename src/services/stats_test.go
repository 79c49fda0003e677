package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Jimbaiko/Spendly/src/models"
)

func expenseAt(amount string, source string, createdAt time.Time) models.Expense {
	return models.Expense{
		Amount:    decimal.RequireFromString(amount),
		Source:    source,
		CreatedAt: createdAt,
	}
}

func TestTotalAmountEmptySet(t *testing.T) {
	total := TotalAmount(nil)
	assert.True(t, total.IsZero())
}

func TestTotalAmountSumsAll(t *testing.T) {
	now := time.Now()
	expenses := []models.Expense{
		expenseAt("15.00", models.SourceMonobank, now),
		expenseAt("4.50", models.SourceManual, now),
		expenseAt("0.01", models.SourceManual, now),
	}
	assert.Equal(t, "19.51", TotalAmount(expenses).String())
}

func TestTodayExpensesBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		expenseAt("1.00", models.SourceManual, midnight),                      // inclusive start
		expenseAt("2.00", models.SourceManual, midnight.Add(23*time.Hour)),    // late today
		expenseAt("3.00", models.SourceManual, midnight.Add(-time.Second)),    // yesterday
		expenseAt("4.00", models.SourceManual, midnight.Add(24*time.Hour)),    // tomorrow, exclusive
		expenseAt("5.00", models.SourceManual, now.Add(-72*time.Hour)),        // days ago
	}

	today := TodayExpenses(expenses, now)
	assert.Len(t, today, 2)
	assert.Equal(t, "3", TotalAmount(today).String())
}

func TestSourceBreakdownCountsSumToTotal(t *testing.T) {
	now := time.Now()
	expenses := []models.Expense{
		expenseAt("1.00", models.SourceManual, now),
		expenseAt("2.00", models.SourceMonobank, now),
		expenseAt("3.00", models.SourceMonobank, now),
	}

	counts := SourceBreakdown(expenses)
	assert.Equal(t, 1, counts.Manual)
	assert.Equal(t, 2, counts.Monobank)
	assert.Equal(t, len(expenses), counts.Manual+counts.Monobank)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	expenses := []models.Expense{
		expenseAt("10.00", models.SourceManual, now),
		expenseAt("5.00", models.SourceMonobank, now),
		expenseAt("7.25", models.SourceMonobank, yesterday),
	}

	stats := ComputeStats(expenses, now)
	assert.Equal(t, "22.25", stats.Total.String())
	assert.Equal(t, "15", stats.Today.String())
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.TodayCount)
	assert.Equal(t, models.SourceCounts{Manual: 1, Monobank: 2}, stats.Sources)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.True(t, stats.Total.IsZero())
	assert.True(t, stats.Today.IsZero())
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.TodayCount)
}
