package handlers

import (
	"net/http"

	"github.com/Harshitk-cp/guestchat/internal/service"
	"github.com/go-chi/chi/v5"
)

type TenantHandler struct {
	svc *service.TenantService
}

func NewTenantHandler(svc *service.TenantService) *TenantHandler {
	return &TenantHandler{svc: svc}
}

type tenantResponse struct {
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenant_id")

	tenant, err := h.svc.Resolve(r.Context(), tenantID)
	if err != nil {
		if status, msg, ok := tenantErrorStatus(err); ok {
			writeError(w, status, msg)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve tenant")
		return
	}

	writeJSON(w, http.StatusOK, tenantResponse{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
	})
}
