package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS budgets (
		id UUID PRIMARY KEY,
		total_budget NUMERIC(12,2) NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		daily_limit NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// Single-slot pointer to the active budget; the CHECK keeps it one row.
	`CREATE TABLE IF NOT EXISTS active_budget (
		slot BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (slot),
		budget_id UUID NOT NULL REFERENCES budgets(id)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		note TEXT,
		source TEXT NOT NULL DEFAULT 'manual',
		monobank_id TEXT UNIQUE,
		merchant_name TEXT,
		merchant_type TEXT,
		category_code TEXT,
		transaction_time TIMESTAMPTZ,
		card_type TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS monobank_settings (
		account_id TEXT PRIMARY KEY,
		api_token TEXT NOT NULL,
		last_sync TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// Migrate bootstraps the schema. Every statement is idempotent, so running
// it on every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
