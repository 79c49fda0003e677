package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Jimbaiko/Spendly/src/api"
	"github.com/Jimbaiko/Spendly/src/config"
	"github.com/Jimbaiko/Spendly/src/db"
	dbsql "github.com/Jimbaiko/Spendly/src/db/sql"
	"github.com/Jimbaiko/Spendly/src/monobank"
	"github.com/Jimbaiko/Spendly/src/services"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Connect to database
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	// Stores and services
	budgetStore := &dbsql.BudgetSQL{Pool: pool}
	expenseStore := &dbsql.ExpenseSQL{Pool: pool}
	settingsStore := &dbsql.SyncSettingsSQL{Pool: pool}
	monobankClient := monobank.NewClient(cfg.MonobankBaseURL)

	budgetSvc := services.NewBudgetService(budgetStore, expenseStore)
	expenseSvc := services.NewExpenseService(expenseStore)
	syncSvc := services.NewSyncService(expenseStore, settingsStore, monobankClient, cfg.SyncDefaultDays)

	// Router
	router := api.NewRouter(budgetSvc, expenseSvc, syncSvc, monobankClient, cfg.ReadOnly)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
