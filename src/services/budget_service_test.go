package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jimbaiko/Spendly/src/models"
)

func TestBudgetActiveWhenNoneExists(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{}, &fakeExpenseStore{})

	budget, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, budget)
}

func TestBudgetCreateBecomesActive(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store, &fakeExpenseStore{})
	end := time.Now().Add(30 * 24 * time.Hour)

	created, err := svc.Create(context.Background(), decimal.RequireFromString("1000"), end, decimal.RequireFromString("33.33"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.ID, active.ID)
}

func TestBudgetCreateRepointsActive(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store, &fakeExpenseStore{})
	end := time.Now().Add(30 * 24 * time.Hour)

	first, err := svc.Create(context.Background(), decimal.RequireFromString("500"), end, decimal.RequireFromString("20"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), decimal.RequireFromString("800"), end, decimal.RequireFromString("25"))
	require.NoError(t, err)

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)
	// The older budget is retained, just no longer active.
	assert.Len(t, store.budgets, 2)
}

func TestBudgetCreateValidation(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store, &fakeExpenseStore{})

	cases := []struct {
		name  string
		total string
		end   time.Time
		daily string
		field string
	}{
		{"zero total", "0", time.Now().Add(time.Hour), "10", "totalBudget"},
		{"negative total", "-100", time.Now().Add(time.Hour), "10", "totalBudget"},
		{"zero daily limit", "100", time.Now().Add(time.Hour), "0", "dailyLimit"},
		{"missing end date", "100", time.Time{}, "10", "endDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), decimal.RequireFromString(tc.total), tc.end, decimal.RequireFromString(tc.daily))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
		})
	}

	// A rejected create leaves the store untouched.
	assert.Empty(t, store.budgets)
}

func TestBudgetReplaceWithoutActive(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{}, &fakeExpenseStore{})

	_, err := svc.Replace(context.Background(), decimal.RequireFromString("100"), time.Now().Add(time.Hour), decimal.RequireFromString("10"))
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "budget", nfe.Entity)
}

func TestBudgetReplaceOverwritesAllFields(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store, &fakeExpenseStore{})
	end := time.Now().Add(10 * 24 * time.Hour)

	created, err := svc.Create(context.Background(), decimal.RequireFromString("500"), end, decimal.RequireFromString("50"))
	require.NoError(t, err)

	newEnd := end.Add(5 * 24 * time.Hour)
	updated, err := svc.Replace(context.Background(), decimal.RequireFromString("750"), newEnd, decimal.RequireFromString("30"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "750", updated.TotalBudget.String())
	assert.Equal(t, "30", updated.DailyLimit.String())
	assert.True(t, updated.EndDate.Equal(newEnd))
}

func TestBudgetOverview(t *testing.T) {
	store := &fakeBudgetStore{}
	expenses := &fakeExpenseStore{}
	svc := NewBudgetService(store, expenses)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(10 * 24 * time.Hour)

	_, err := svc.Create(context.Background(), decimal.RequireFromString("1000"), end, decimal.RequireFromString("100"))
	require.NoError(t, err)

	_, err = expenses.Insert(context.Background(), &models.Expense{
		Amount:    decimal.RequireFromString("200"),
		Source:    models.SourceManual,
		CreatedAt: now,
	})
	require.NoError(t, err)

	overview, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, 10, overview.DaysRemaining)
	// (1000 - 200) / 10 days
	assert.Equal(t, "80", overview.SuggestedDailyLimit.String())
}

func TestBudgetOverviewWhenNoneExists(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{}, &fakeExpenseStore{})

	overview, err := svc.Overview(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, overview)
}
