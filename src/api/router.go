package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Jimbaiko/Spendly/src/handlers"
	"github.com/Jimbaiko/Spendly/src/middleware"
	"github.com/Jimbaiko/Spendly/src/monobank"
	"github.com/Jimbaiko/Spendly/src/services"
)

func NewRouter(
	budgetSvc *services.BudgetService,
	expenseSvc *services.ExpenseService,
	syncSvc *services.SyncService,
	monobankClient *monobank.Client,
	readOnly bool,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.ReadOnlyMiddleware(readOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Budget
		r.Get("/budget", handlers.GetBudget(budgetSvc))
		r.Post("/budget", handlers.CreateBudget(budgetSvc))
		r.Put("/budget", handlers.ReplaceBudget(budgetSvc))

		// Expenses
		r.Get("/expenses", handlers.ListExpenses(expenseSvc))
		r.Post("/expenses", handlers.CreateExpense(expenseSvc))
		r.Get("/expenses/{expense_id}", handlers.GetExpense(expenseSvc))
		r.Put("/expenses/{expense_id}", handlers.UpdateExpense(expenseSvc))
		r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(expenseSvc))

		// Monobank
		r.Post("/monobank/sync", handlers.SyncTransactions(syncSvc))
		r.Post("/monobank/accounts", handlers.GetMonobankAccounts(monobankClient))
		r.Post("/monobank/test", handlers.TestMonobankConnection(monobankClient))
	})

	return r
}
