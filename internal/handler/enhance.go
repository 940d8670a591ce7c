package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

// EnhanceHandler handles HTTP requests for password enhancement.
type EnhanceHandler struct {
	service *service.EnhancerService
}

// NewEnhanceHandler creates a new EnhanceHandler.
func NewEnhanceHandler(svc *service.EnhancerService) *EnhanceHandler {
	return &EnhanceHandler{service: svc}
}

// HandleEnhance handles POST /api/v1/enhance requests.
func (h *EnhanceHandler) HandleEnhance(w http.ResponseWriter, r *http.Request) {
	var req model.EnhanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Enhance(r.Context(), req)
	if err != nil {
		if !isValidationError(err) {
			slog.ErrorContext(r.Context(), "password enhancement failed", "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
