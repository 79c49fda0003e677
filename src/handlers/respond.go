package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Jimbaiko/Spendly/src/services"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Validation, not-found and conflict conditions surface with detail; store
// errors are logged in full and returned as a generic failure.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid data",
			"details": verr.Fields,
		})
		return
	}

	var nferr *services.NotFoundError
	if errors.As(err, &nferr) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": nferr.Error()})
		return
	}

	var cerr *services.ConflictError
	if errors.As(err, &cerr) {
		respondJSON(w, http.StatusConflict, map[string]string{"error": cerr.Error()})
		return
	}

	var serr *services.SourceError
	if errors.As(err, &serr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "sync failed",
			"details": serr.Description,
		})
		return
	}

	log.Printf("ERROR: %v", err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
