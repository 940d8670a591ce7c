package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

// StrengthHandler handles HTTP requests for password strength checks.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *StrengthHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Evaluate(r.Context(), req)
	if err != nil {
		if !isValidationError(err) {
			slog.ErrorContext(r.Context(), "password evaluation failed", "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
