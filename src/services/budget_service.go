package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/util"
)

// BudgetService maintains the single active budget.
type BudgetService struct {
	budgets  BudgetStore
	expenses ExpenseStore
}

func NewBudgetService(budgets BudgetStore, expenses ExpenseStore) *BudgetService {
	return &BudgetService{budgets: budgets, expenses: expenses}
}

// Active returns the active budget, or nil when none exists. Absence is a
// valid outcome, not an error.
func (s *BudgetService) Active(ctx context.Context) (*models.Budget, error) {
	budget, err := s.budgets.Active(ctx)
	if err != nil {
		return nil, &StoreError{Op: "get active budget", Err: err}
	}
	return budget, nil
}

// Overview returns the active budget with days remaining and a suggested
// daily limit derived from spending so far, or nil when no budget exists.
func (s *BudgetService) Overview(ctx context.Context, now time.Time) (*models.BudgetOverview, error) {
	budget, err := s.Active(ctx)
	if err != nil || budget == nil {
		return nil, err
	}

	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list expenses", Err: err}
	}
	spent := TotalAmount(expenses)

	return &models.BudgetOverview{
		Budget:              *budget,
		DaysRemaining:       util.DaysUntil(budget.EndDate, now),
		SuggestedDailyLimit: util.SuggestedDailyLimit(budget.TotalBudget, spent, budget.EndDate, now),
	}, nil
}

// Create inserts a new budget and repoints the active slot to it. Older
// budgets are retained but no longer active.
func (s *BudgetService) Create(ctx context.Context, totalBudget decimal.Decimal, endDate time.Time, dailyLimit decimal.Decimal) (*models.Budget, error) {
	if err := validateBudget(totalBudget, endDate, dailyLimit); err != nil {
		return nil, err
	}

	created, err := s.budgets.Create(ctx, &models.Budget{
		TotalBudget: totalBudget,
		EndDate:     endDate,
		DailyLimit:  dailyLimit,
	})
	if err != nil {
		return nil, &StoreError{Op: "create budget", Err: err}
	}
	return created, nil
}

// Replace overwrites every field of the active budget. It is a full
// replacement, not a merge.
func (s *BudgetService) Replace(ctx context.Context, totalBudget decimal.Decimal, endDate time.Time, dailyLimit decimal.Decimal) (*models.Budget, error) {
	if err := validateBudget(totalBudget, endDate, dailyLimit); err != nil {
		return nil, err
	}

	current, err := s.budgets.Active(ctx)
	if err != nil {
		return nil, &StoreError{Op: "get active budget", Err: err}
	}
	if current == nil {
		return nil, &NotFoundError{Entity: "budget"}
	}

	current.TotalBudget = totalBudget
	current.EndDate = endDate
	current.DailyLimit = dailyLimit

	updated, err := s.budgets.Replace(ctx, current)
	if err != nil {
		return nil, &StoreError{Op: "replace budget", Err: err}
	}
	return updated, nil
}

func validateBudget(totalBudget decimal.Decimal, endDate time.Time, dailyLimit decimal.Decimal) error {
	verr := &ValidationError{}
	if !totalBudget.IsPositive() {
		verr.Add("totalBudget", "must be positive")
	}
	if !dailyLimit.IsPositive() {
		verr.Add("dailyLimit", "must be positive")
	}
	if endDate.IsZero() {
		verr.Add("endDate", "must be a valid date")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
