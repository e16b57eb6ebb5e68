package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/api/respond"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/services"
)

// InstructionHandler is the HTTP transport for the instruction catalog.
type InstructionHandler struct {
	svc *services.InstructionService
}

func NewInstructionHandler(svc *services.InstructionService) *InstructionHandler {
	return &InstructionHandler{svc: svc}
}

// ListInstructions GET /api/emergency-instructions
func (h *InstructionHandler) ListInstructions(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// ListInstructionsByType GET /api/emergency-instructions/{type}
func (h *InstructionHandler) ListInstructionsByType(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["type"]
	res, err := h.svc.ListByType(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respond.WriteUnprocessable(w, err.Error())
		case errors.Is(err, model.ErrNotFound):
			respond.WriteNotFound(w, err.Error())
		default:
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
