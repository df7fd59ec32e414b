// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// cacheTTL bounds staleness of cached read endpoints. Writes also
// invalidate eagerly, so this is a backstop.
const cacheTTL = 5 * time.Minute

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
