package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/content-portal/internal/domain"
)

// RuntimeConfig exposes settings clients need before acting. The body is
// the bare object, not the response envelope.
func RuntimeConfig(cfg domain.RuntimeConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(cfg)
	}
}
