package sql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jimbaiko/Spendly/src/db"
	"github.com/Jimbaiko/Spendly/src/models"
)

const activeBudgetCacheKey = "budget:active"

// BudgetSQL implements services.BudgetStore on PostgreSQL. The active budget
// is an explicit single-row pointer updated in the same transaction as the
// insert, so "which budget is active" is never ambiguous.
type BudgetSQL struct {
	Pool *pgxpool.Pool
}

func (s *BudgetSQL) Active(ctx context.Context) (*models.Budget, error) {
	if cached, found := db.GetCache(activeBudgetCacheKey); found {
		if b, ok := cached.(models.Budget); ok {
			copy := b
			return &copy, nil
		}
	}

	query := `
		SELECT b.id, b.total_budget, b.end_date, b.daily_limit, b.created_at
		FROM budgets b
		JOIN active_budget a ON a.budget_id = b.id
	`
	var b models.Budget
	err := s.Pool.QueryRow(ctx, query).
		Scan(&b.ID, &b.TotalBudget, &b.EndDate, &b.DailyLimit, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	db.SetBudgetCache(activeBudgetCacheKey, b)
	return &b, nil
}

func (s *BudgetSQL) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO budgets (id, total_budget, end_date, daily_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, total_budget, end_date, daily_limit, created_at
	`
	var b models.Budget
	err = tx.QueryRow(ctx, query, uuid.NewString(), budget.TotalBudget, budget.EndDate, budget.DailyLimit).
		Scan(&b.ID, &b.TotalBudget, &b.EndDate, &b.DailyLimit, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO active_budget (slot, budget_id) VALUES (TRUE, $1)
		ON CONFLICT (slot) DO UPDATE SET budget_id = EXCLUDED.budget_id
	`, b.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	db.ClearAllBudgetCaches()
	return &b, nil
}

func (s *BudgetSQL) Replace(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET total_budget = $1, end_date = $2, daily_limit = $3
		WHERE id = $4
		RETURNING id, total_budget, end_date, daily_limit, created_at
	`
	var b models.Budget
	err := s.Pool.QueryRow(ctx, query, budget.TotalBudget, budget.EndDate, budget.DailyLimit, budget.ID).
		Scan(&b.ID, &b.TotalBudget, &b.EndDate, &b.DailyLimit, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	db.ClearAllBudgetCaches()
	return &b, nil
}
