package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jimbaiko/Spendly/src/models"
	"github.com/Jimbaiko/Spendly/src/monobank"
	"github.com/Jimbaiko/Spendly/src/services"
	"github.com/Jimbaiko/Spendly/src/util"
)

func SyncTransactions(svc *services.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			APIToken  string `json:"apiToken"`
			AccountID string `json:"accountId"`
			Days      int    `json:"days"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode sync request body: %v", err)
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		result, err := svc.Sync(r.Context(), req.APIToken, req.AccountID, req.Days, time.Now())
		if err != nil {
			log.Printf("ERROR: Sync failed for account %s: %v", req.AccountID, err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf("Sync complete: %d new expenses added, %d skipped", result.Added, result.Skipped),
			"stats": map[string]interface{}{
				"added":   result.Added,
				"skipped": result.Skipped,
				"total":   result.Total,
				"period":  result.Period,
			},
			"addedExpenses": result.Preview,
		})
	}
}

func GetMonobankAccounts(client *monobank.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := decodeToken(w, r)
		if !ok {
			return
		}

		info, err := client.GetClientInfo(r.Context(), token)
		if err != nil {
			respondMonobankError(w, "failed to fetch accounts", err)
			return
		}

		accounts := make([]models.MonobankAccount, 0, len(info.Accounts))
		for _, a := range info.Accounts {
			accounts = append(accounts, models.MonobankAccount{
				ID:           a.ID,
				SendID:       a.SendID,
				Balance:      decimal.New(a.Balance, -2),
				CreditLimit:  decimal.New(a.CreditLimit, -2),
				Type:         a.Type,
				CurrencyCode: a.CurrencyCode,
				CashbackType: a.CashbackType,
				MaskedPan:    a.MaskedPan,
				IBAN:         a.IBAN,
			})
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"clientName": info.Name,
			"accounts":   accounts,
			"message":    fmt.Sprintf("Found %d accounts", len(accounts)),
		})
	}
}

func TestMonobankConnection(client *monobank.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := decodeToken(w, r)
		if !ok {
			return
		}
		if !util.ValidateMonobankToken(token) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed api token"})
			return
		}

		info, err := client.GetClientInfo(r.Context(), token)
		if err != nil {
			respondMonobankError(w, "invalid token or API error", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Monobank connection successful",
			"clientInfo": map[string]string{
				"name":        info.Name,
				"webHookUrl":  info.WebHookURL,
				"permissions": info.Permissions,
			},
		})
	}
}

func decodeToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		APIToken string `json:"apiToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return "", false
	}
	if req.APIToken == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "api token is required"})
		return "", false
	}
	return req.APIToken, true
}

func respondMonobankError(w http.ResponseWriter, message string, err error) {
	var apiErr *monobank.APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   message,
			"details": apiErr.Description,
		})
		return
	}
	log.Printf("ERROR: Monobank request failed: %v", err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}
