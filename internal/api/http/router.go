package http

import (
	"github.com/gorilla/mux"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/api/recovery"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/services"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// NewRouter builds the API router over the given store. All routes live
// under the /api prefix, matching the paths mobile clients already call.
func NewRouter(st store.Store, health HealthReporter) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	instructionSvc := services.NewInstructionService(st)
	helpSvc := services.NewHelpRequestService(st)

	healthHandler := NewHealthHandler(health)
	instructionHandler := NewInstructionHandler(instructionSvc)
	helpHandler := NewHelpRequestHandler(helpSvc)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", healthHandler.Root).Methods("GET")
	api.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	api.HandleFunc("/emergency-instructions", instructionHandler.ListInstructions).Methods("GET")
	api.HandleFunc("/emergency-instructions/{type}", instructionHandler.ListInstructionsByType).Methods("GET")

	api.HandleFunc("/help-requests", helpHandler.CreateHelpRequest).Methods("POST")
	api.HandleFunc("/help-requests", helpHandler.ListActiveHelpRequests).Methods("GET")
	api.HandleFunc("/help-requests/{id}", helpHandler.GetHelpRequest).Methods("GET")
	api.HandleFunc("/help-requests/{id}", helpHandler.UpdateHelpRequest).Methods("PUT")

	return router
}
