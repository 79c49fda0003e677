package services

import (
	"context"
	"strconv"
	"time"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/monobank"
)

// fakeBudgetStore keeps budgets in memory with a single active pointer,
// mirroring the SQL store's semantics.
type fakeBudgetStore struct {
	budgets    []models.Budget
	activeID   string
	activeErr  error
	createErr  error
	replaceErr error
}

func (f *fakeBudgetStore) Active(ctx context.Context) (*models.Budget, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	for i := range f.budgets {
		if f.budgets[i].ID == f.activeID {
			b := f.budgets[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBudgetStore) Create(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = "budget-" + strconv.Itoa(len(f.budgets)+1)
	created.CreatedAt = time.Now()
	f.budgets = append(f.budgets, created)
	f.activeID = created.ID
	return &created, nil
}

func (f *fakeBudgetStore) Replace(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	for i := range f.budgets {
		if f.budgets[i].ID == b.ID {
			f.budgets[i] = *b
			replaced := f.budgets[i]
			return &replaced, nil
		}
	}
	return nil, nil
}

// fakeExpenseStore keeps expenses in memory, newest first, and enforces
// monobank id uniqueness the way the SQL store does.
type fakeExpenseStore struct {
	expenses  []models.Expense
	nextID    int
	insertErr error
	listErr   error
	getErr    error
	updateErr error
	deleteErr error
}

func (f *fakeExpenseStore) Insert(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if e.MonobankID != nil {
		for i := range f.expenses {
			if f.expenses[i].MonobankID != nil && *f.expenses[i].MonobankID == *e.MonobankID {
				return nil, &ConflictError{Message: "this transaction has already been added"}
			}
		}
	}
	f.nextID++
	created := *e
	created.ID = "expense-" + strconv.Itoa(f.nextID)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}
	f.expenses = append([]models.Expense{created}, f.expenses...)
	return &created, nil
}

func (f *fakeExpenseStore) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			e := f.expenses[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseStore) GetByMonobankID(ctx context.Context, monobankID string) (*models.Expense, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.expenses {
		if f.expenses[i].MonobankID != nil && *f.expenses[i].MonobankID == monobankID {
			e := f.expenses[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseStore) ListAll(ctx context.Context) ([]models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Expense, len(f.expenses))
	copy(out, f.expenses)
	return out, nil
}

func (f *fakeExpenseStore) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.expenses {
		if f.expenses[i].ID == e.ID {
			f.expenses[i].Amount = e.Amount
			f.expenses[i].Note = e.Note
			updated := f.expenses[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Entity: "expense", ID: id}
}

// fakeSettingsStore records the last upserted settings per account.
type fakeSettingsStore struct {
	settings  map[string]models.SyncSettings
	upsertErr error
	upserts   int
}

func (f *fakeSettingsStore) Upsert(ctx context.Context, s *models.SyncSettings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.settings == nil {
		f.settings = map[string]models.SyncSettings{}
	}
	f.settings[s.AccountID] = *s
	f.upserts++
	return nil
}

// fakeStatementSource replays a fixed statement or fails with a fixed error.
type fakeStatementSource struct {
	items []monobank.StatementItem
	err   error
	calls int
}

func (f *fakeStatementSource) GetStatement(ctx context.Context, token, accountID string, from, to int64) ([]monobank.StatementItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
