package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/api/respond"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/services"
)

// HelpRequestHandler is the HTTP transport for the help request ledger.
type HelpRequestHandler struct {
	svc *services.HelpRequestService
}

func NewHelpRequestHandler(svc *services.HelpRequestService) *HelpRequestHandler {
	return &HelpRequestHandler{svc: svc}
}

// writeServiceError maps domain errors to the wire contract:
// validation failures are 422, absence is 404, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteUnprocessable(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}

// CreateHelpRequest POST /api/help-requests
//
// Returns 200 with the created record; clients of the original service
// expect 200 here, not 201.
func (h *HelpRequestHandler) CreateHelpRequest(w http.ResponseWriter, r *http.Request) {
	var in model.CreateHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteUnprocessable(w, "invalid JSON body")
		return
	}
	hr, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, hr)
}

// ListActiveHelpRequests GET /api/help-requests
func (h *HelpRequestHandler) ListActiveHelpRequests(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListActive(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// GetHelpRequest GET /api/help-requests/{id}
func (h *HelpRequestHandler) GetHelpRequest(w http.ResponseWriter, r *http.Request) {
	hr, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, hr)
}

// UpdateHelpRequest PUT /api/help-requests/{id}
func (h *HelpRequestHandler) UpdateHelpRequest(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteUnprocessable(w, "invalid JSON body")
		return
	}
	hr, err := h.svc.UpdateStatus(r.Context(), mux.Vars(r)["id"], in.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, hr)
}
