package services

import (
	"context"
	"errors"
	"time"

	"github.com/Jimbaiko/Spendly/src/models"
)

// FilterToday limits a listing to expenses created today.
const FilterToday = "today"

// ExpenseService is the manual expense entry path.
type ExpenseService struct {
	expenses ExpenseStore
}

func NewExpenseService(expenses ExpenseStore) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Create records a manually entered expense. Monobank fields may be supplied
// to register an imported transaction by hand; a duplicate monobank id is
// rejected so a double-submission never creates two rows.
func (s *ExpenseService) Create(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	if !req.Amount.IsPositive() {
		verr := &ValidationError{}
		verr.Add("amount", "must be positive")
		return nil, verr
	}

	if req.MonobankID != nil && *req.MonobankID != "" {
		existing, err := s.expenses.GetByMonobankID(ctx, *req.MonobankID)
		if err != nil {
			return nil, &StoreError{Op: "check duplicate monobank id", Err: err}
		}
		if existing != nil {
			return nil, &ConflictError{Message: "this transaction has already been added"}
		}
	}

	source := models.SourceManual
	if req.IsFromMonobank {
		source = models.SourceMonobank
	}

	expense := &models.Expense{
		Amount:          req.Amount,
		Note:            req.Note,
		Source:          source,
		MonobankID:      req.MonobankID,
		MerchantName:    req.MerchantName,
		MerchantType:    req.MerchantType,
		CategoryCode:    req.CategoryCode,
		TransactionTime: req.TransactionTime,
		CardType:        req.CardType,
	}

	created, err := s.expenses.Insert(ctx, expense)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, &StoreError{Op: "insert expense", Err: err}
	}
	return created, nil
}

// Get returns a single expense by id.
func (s *ExpenseService) Get(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "get expense", Err: err}
	}
	if expense == nil {
		return nil, &NotFoundError{Entity: "expense", ID: id}
	}
	return expense, nil
}

// List returns expenses newest-first, optionally narrowed to today, together
// with the stats bundle. Stats are always computed over the full collection.
func (s *ExpenseService) List(ctx context.Context, filter string, now time.Time) ([]models.Expense, models.Stats, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, models.Stats{}, &StoreError{Op: "list expenses", Err: err}
	}

	stats := ComputeStats(all, now)
	if filter == FilterToday {
		return TodayExpenses(all, now), stats, nil
	}
	return all, stats, nil
}

// Update changes the amount and/or note of an expense. Fields left nil in
// the request keep their current value; imported-only fields are never
// touched regardless of origin.
func (s *ExpenseService) Update(ctx context.Context, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "get expense", Err: err}
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "expense", ID: id}
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			verr := &ValidationError{}
			verr.Add("amount", "must be positive")
			return nil, verr
		}
		existing.Amount = *req.Amount
	}
	if req.Note != nil {
		existing.Note = req.Note
	}

	updated, err := s.expenses.Update(ctx, existing)
	if err != nil {
		return nil, &StoreError{Op: "update expense", Err: err}
	}
	if updated == nil {
		return nil, &NotFoundError{Entity: "expense", ID: id}
	}
	return updated, nil
}

// Delete removes an expense and returns its snapshot together with stats
// recomputed over the remaining collection, so callers can refresh a view
// without a second round trip.
func (s *ExpenseService) Delete(ctx context.Context, id string, now time.Time) (*models.Expense, models.Stats, error) {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, models.Stats{}, &StoreError{Op: "get expense", Err: err}
	}
	if existing == nil {
		return nil, models.Stats{}, &NotFoundError{Entity: "expense", ID: id}
	}

	if err := s.expenses.Delete(ctx, id); err != nil {
		return nil, models.Stats{}, &StoreError{Op: "delete expense", Err: err}
	}

	remaining, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, models.Stats{}, &StoreError{Op: "list expenses", Err: err}
	}
	return existing, ComputeStats(remaining, now), nil
}
