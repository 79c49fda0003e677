package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jimbaiko/Spendly/src/db"
	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/services"
)

const (
	allExpensesCacheKey = "expenses:all"
	uniqueViolation     = "23505"
)

const expenseColumns = `id, amount, note, source, monobank_id, merchant_name,
	merchant_type, category_code, transaction_time, card_type, created_at`

// ExpenseSQL implements services.ExpenseStore on PostgreSQL.
type ExpenseSQL struct {
	Pool *pgxpool.Pool
}

func (s *ExpenseSQL) Insert(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	// Imported rows carry the bank's transaction instant; manual rows are
	// stamped at insert time.
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO expenses (id, amount, note, source, monobank_id, merchant_name,
			merchant_type, category_code, transaction_time, card_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + expenseColumns
	row := s.Pool.QueryRow(ctx, query,
		uuid.NewString(), e.Amount, e.Note, e.Source, e.MonobankID, e.MerchantName,
		e.MerchantType, e.CategoryCode, e.TransactionTime, e.CardType, createdAt)

	created, err := scanExpense(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &services.ConflictError{Message: "this transaction has already been added"}
		}
		return nil, err
	}

	db.ClearAllExpenseCaches()
	return created, nil
}

func (s *ExpenseSQL) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	expense, err := scanExpense(s.Pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return expense, err
}

func (s *ExpenseSQL) GetByMonobankID(ctx context.Context, monobankID string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE monobank_id = $1`
	expense, err := scanExpense(s.Pool.QueryRow(ctx, query, monobankID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return expense, err
}

func (s *ExpenseSQL) ListAll(ctx context.Context) ([]models.Expense, error) {
	if cached, found := db.GetCache(allExpensesCacheKey); found {
		if expenses, ok := cached.([]models.Expense); ok {
			return expenses, nil
		}
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY created_at DESC`
	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetExpenseCache(allExpensesCacheKey, expenses)
	return expenses, nil
}

func (s *ExpenseSQL) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	// Only amount and note are mutable; imported-only fields stay as ingested.
	query := `
		UPDATE expenses
		SET amount = $1, note = $2
		WHERE id = $3
		RETURNING ` + expenseColumns
	updated, err := scanExpense(s.Pool.QueryRow(ctx, query, e.Amount, e.Note, e.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	db.ClearAllExpenseCaches()
	return updated, nil
}

func (s *ExpenseSQL) Delete(ctx context.Context, id string) error {
	cmd, err := s.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}

	db.ClearAllExpenseCaches()
	return nil
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.Amount, &e.Note, &e.Source, &e.MonobankID, &e.MerchantName,
		&e.MerchantType, &e.CategoryCode, &e.TransactionTime, &e.CardType, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
