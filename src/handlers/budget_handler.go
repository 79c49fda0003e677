package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jimbaiko/Spendly/src/services"
)

type budgetRequest struct {
	TotalBudget decimal.Decimal `json:"totalBudget"`
	EndDate     time.Time       `json:"endDate"`
	DailyLimit  decimal.Decimal `json:"dailyLimit"`
}

func GetBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context(), time.Now())
		if err != nil {
			log.Printf("ERROR: Failed to get active budget: %v", err)
			respondServiceError(w, err)
			return
		}
		if overview == nil {
			// No budget yet is a valid state, not an error.
			respondJSON(w, http.StatusOK, map[string]interface{}{"budget": nil})
			return
		}
		respondJSON(w, http.StatusOK, overview)
	}
}

func CreateBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body: %v", err)
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		budget, err := svc.Create(r.Context(), req.TotalBudget, req.EndDate, req.DailyLimit)
		if err != nil {
			log.Printf("ERROR: Failed to create budget: %v", err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Created budget %s, total %s until %s", budget.ID, budget.TotalBudget, budget.EndDate.Format(time.DateOnly))
		respondJSON(w, http.StatusCreated, map[string]interface{}{"budget": budget})
	}
}

func ReplaceBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode replace budget request body: %v", err)
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		budget, err := svc.Replace(r.Context(), req.TotalBudget, req.EndDate, req.DailyLimit)
		if err != nil {
			log.Printf("ERROR: Failed to replace budget: %v", err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Replaced budget %s", budget.ID)
		respondJSON(w, http.StatusOK, map[string]interface{}{"budget": budget})
	}
}
