package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/guestchat/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// tenantErrorStatus maps tenant resolution failures to a status and message.
func tenantErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		return http.StatusNotFound, "tenant not found", true
	case errors.Is(err, domain.ErrTenantsUnavailable):
		return http.StatusInternalServerError, "tenants file not found", true
	case errors.Is(err, domain.ErrTenantsMalformed):
		return http.StatusInternalServerError, "error parsing tenants file", true
	}
	return 0, "", false
}
