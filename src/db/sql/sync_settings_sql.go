package sql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jimbaiko/Spendly/src/models"
)

// SyncSettingsSQL implements services.SyncSettingsStore on PostgreSQL.
type SyncSettingsSQL struct {
	Pool *pgxpool.Pool
}

// Upsert writes the bookkeeping row for an account in one statement, so two
// concurrent syncs for the same account cannot interleave a read-then-write.
func (s *SyncSettingsSQL) Upsert(ctx context.Context, settings *models.SyncSettings) error {
	query := `
		INSERT INTO monobank_settings (account_id, api_token, last_sync, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE
		SET api_token = EXCLUDED.api_token,
			last_sync = EXCLUDED.last_sync,
			is_active = EXCLUDED.is_active
	`
	_, err := s.Pool.Exec(ctx, query, settings.AccountID, settings.APIToken, settings.LastSync, settings.IsActive)
	return err
}
