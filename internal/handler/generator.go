package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if !isValidationError(err) {
			slog.ErrorContext(r.Context(), "password generation failed", "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
