package http

import (
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP routing table for the agency API.
func NewRouter(agency service.AgencyService, addons service.AddonCatalog) *mux.Router {
	h := NewHandler(agency, addons)

	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/vehicles", h.ListVehicles).Methods("GET")
	api.HandleFunc("/vehicles", h.AddVehicle).Methods("POST")
	api.HandleFunc("/vehicles/{id}", h.GetVehicle).Methods("GET")

	api.HandleFunc("/customers", h.RegisterCustomer).Methods("POST")
	api.HandleFunc("/customers/{id}", h.GetCustomer).Methods("GET")

	api.HandleFunc("/agreements", h.Rent).Methods("POST")
	api.HandleFunc("/agreements", h.ListAgreements).Methods("GET")
	api.HandleFunc("/agreements/{id}", h.GetAgreement).Methods("GET")
	api.HandleFunc("/agreements/{id}/return", h.Return).Methods("POST")

	api.HandleFunc("/addons", h.ListAddons).Methods("GET")

	return r
}
