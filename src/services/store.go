package services

import (
	"context"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/monobank"
)

// BudgetStore persists budgets and the single active-budget pointer.
// Create and Replace must repoint/overwrite atomically.
type BudgetStore interface {
	// Active returns the budget the active slot points at, or nil when no
	// budget has ever been created.
	Active(ctx context.Context) (*models.Budget, error)
	Create(ctx context.Context, b *models.Budget) (*models.Budget, error)
	Replace(ctx context.Context, b *models.Budget) (*models.Budget, error)
}

// ExpenseStore persists expenses. Lookups return (nil, nil) when the row is
// absent; Insert returns *ConflictError on a duplicate monobank id.
type ExpenseStore interface {
	Insert(ctx context.Context, e *models.Expense) (*models.Expense, error)
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	GetByMonobankID(ctx context.Context, monobankID string) (*models.Expense, error)
	ListAll(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, id string) error
}

// SyncSettingsStore upserts per-account sync bookkeeping keyed on account id.
type SyncSettingsStore interface {
	Upsert(ctx context.Context, s *models.SyncSettings) error
}

// StatementSource yields dated transactions for an account, authenticated by
// a caller-supplied token.
type StatementSource interface {
	GetStatement(ctx context.Context, token, accountID string, from, to int64) ([]monobank.StatementItem, error)
}
