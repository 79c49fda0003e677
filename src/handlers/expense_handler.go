package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/services"
)

func ListExpenses(svc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")

		expenses, stats, err := svc.List(r.Context(), filter, time.Now())
		if err != nil {
			log.Printf("ERROR: Failed to list expenses: %v", err)
			respondServiceError(w, err)
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"expenses": expenses,
			"stats":    stats,
		})
	}
}

func CreateExpense(svc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body: %v", err)
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		expense, err := svc.Create(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create expense: %v", err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Created %s expense %s, amount %s", expense.Source, expense.ID, expense.Amount)
		respondJSON(w, http.StatusCreated, map[string]interface{}{"expense": expense})
	}
}

func GetExpense(svc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "expense_id")

		expense, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{"expense": expense})
	}
}

func UpdateExpense(svc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "expense_id")

		var req models.UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for %s: %v", id, err)
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		expense, err := svc.Update(r.Context(), id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update expense %s: %v", id, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Updated expense %s", expense.ID)
		respondJSON(w, http.StatusOK, map[string]interface{}{"expense": expense})
	}
}

func DeleteExpense(svc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "expense_id")

		deleted, stats, err := svc.Delete(r.Context(), id, time.Now())
		if err != nil {
			log.Printf("ERROR: Failed to delete expense %s: %v", id, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Deleted expense %s, amount %s", deleted.ID, deleted.Amount)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"deletedExpense": deleted,
			"updatedStats":   stats,
		})
	}
}
