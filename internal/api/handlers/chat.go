package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/Harshitk-cp/guestchat/internal/service"
)

const maxChatBodyBytes = 1 << 20

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatRequest struct {
	TenantID     string `json:"tenant_id"`
	GuestName    string `json:"guest_name"`
	GuestMessage string `json:"guest_message"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.svc.Handle(r.Context(), domain.ChatRequest{
		TenantID:     req.TenantID,
		GuestName:    req.GuestName,
		GuestMessage: req.GuestMessage,
	})
	if err != nil {
		if status, msg, ok := tenantErrorStatus(err); ok {
			writeError(w, status, msg)
			return
		}
		switch {
		case errors.Is(err, service.ErrTenantIDMissing):
			writeError(w, http.StatusBadRequest, "access denied")
		case errors.Is(err, service.ErrGuestFieldsMissing):
			writeError(w, http.StatusBadRequest, "name and message are required")
		case errors.Is(err, domain.ErrAssetUnavailable):
			writeError(w, http.StatusInternalServerError, "tenant content unavailable")
		case errors.Is(err, domain.ErrProviderFailed):
			writeError(w, http.StatusBadGateway, "failed to generate response")
		default:
			writeError(w, http.StatusInternalServerError, "failed to handle chat")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
