package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/monobank"
	"github.com/Jimbaiko/Spendly/src/util"
)

// DefaultSyncDays is the lookback window used when the caller does not pick one.
const DefaultSyncDays = 7

// previewLimit caps how many newly created expenses a sync result carries.
const previewLimit = 5

// SyncService pulls bank transactions for a window, imports the debits that
// have not been seen before, and updates the per-account sync bookkeeping.
type SyncService struct {
	expenses    ExpenseStore
	settings    SyncSettingsStore
	source      StatementSource
	defaultDays int
}

func NewSyncService(expenses ExpenseStore, settings SyncSettingsStore, source StatementSource, defaultDays int) *SyncService {
	if defaultDays <= 0 {
		defaultDays = DefaultSyncDays
	}
	return &SyncService{expenses: expenses, settings: settings, source: source, defaultDays: defaultDays}
}

// Sync runs one reconciliation pass. Re-running with an overlapping window is
// idempotent: transactions already imported are recognized by their monobank
// id and skipped. Credits and zero-amount transactions are never imported.
func (s *SyncService) Sync(ctx context.Context, apiToken, accountID string, days int, now time.Time) (*models.SyncResult, error) {
	verr := &ValidationError{}
	if apiToken == "" {
		verr.Add("apiToken", "api token is required")
	}
	if accountID == "" {
		verr.Add("accountId", "account id is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	if days <= 0 {
		days = s.defaultDays
	}

	to := now.Unix()
	from := to - int64(days)*24*60*60

	items, err := s.source.GetStatement(ctx, apiToken, accountID, from, to)
	if err != nil {
		var apiErr *monobank.APIError
		if errors.As(err, &apiErr) {
			return nil, &SourceError{Status: apiErr.StatusCode, Description: apiErr.Description}
		}
		return nil, &SourceError{Description: err.Error()}
	}

	result := &models.SyncResult{
		Total:   len(items),
		Period:  fmt.Sprintf("%d days", days),
		Preview: []models.Expense{},
	}

	for _, item := range items {
		// Zero and positive amounts are credits or refunds, never expenses.
		if item.Amount >= 0 {
			result.Skipped++
			continue
		}

		existing, err := s.expenses.GetByMonobankID(ctx, item.ID)
		if err != nil {
			return nil, &StoreError{Op: "check imported transaction", Err: err}
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		created, err := s.expenses.Insert(ctx, expenseFromStatement(item))
		if err != nil {
			var conflict *ConflictError
			if errors.As(err, &conflict) {
				// A concurrent sync won the race for this id.
				log.Printf("INFO: Transaction %s already imported elsewhere, skipping", item.ID)
				result.Skipped++
				continue
			}
			return nil, &StoreError{Op: "insert imported expense", Err: err}
		}

		result.Added++
		if len(result.Preview) < previewLimit {
			result.Preview = append(result.Preview, *created)
		}
	}

	err = s.settings.Upsert(ctx, &models.SyncSettings{
		AccountID: accountID,
		APIToken:  apiToken,
		LastSync:  now,
		IsActive:  true,
	})
	if err != nil {
		return nil, &StoreError{Op: "upsert sync settings", Err: err}
	}

	log.Printf("INFO: Sync for account %s finished: %d added, %d skipped of %d over %s",
		accountID, result.Added, result.Skipped, result.Total, result.Period)
	return result, nil
}

// expenseFromStatement maps a debit statement item onto an Expense. The
// creation time is the bank's transaction instant, not the import instant,
// so re-syncs preserve the original ordering.
func expenseFromStatement(item monobank.StatementItem) *models.Expense {
	// Minor units, negated on ingest: -(-1500) scaled by 10^-2 is 15.00.
	amount := decimal.New(-item.Amount, -2)

	note := item.Description
	if item.Comment != "" {
		note = note + " - " + item.Comment
	}

	txTime := time.Unix(item.Time, 0)
	expense := &models.Expense{
		Amount:          amount,
		Note:            &note,
		Source:          models.SourceMonobank,
		MonobankID:      &item.ID,
		MerchantName:    &item.Description,
		TransactionTime: &txTime,
		CreatedAt:       txTime,
	}
	if item.MCC != 0 {
		label := util.MCCLabel(item.MCC)
		code := strconv.Itoa(item.MCC)
		expense.MerchantType = &label
		expense.CategoryCode = &code
	}
	if item.Account != "" {
		expense.CardType = &item.Account
	}
	return expense
}
