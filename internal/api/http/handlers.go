package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handler exposes the rental agency over HTTP/JSON.
type Handler struct {
	agency service.AgencyService
	addons service.AddonCatalog
}

func NewHandler(agency service.AgencyService, addons service.AddonCatalog) *Handler {
	return &Handler{agency: agency, addons: addons}
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"
	vehicles, err := h.agency.ListVehicles(r.Context(), onlyAvailable)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"vehicles": vehicles,
		"listing":  service.FormatVehicleListing(vehicles),
	})
}

func (h *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id"`
		Make        string `json:"make"`
		Model       string `json:"model"`
		Year        int32  `json:"year"`
		PricePerDay *int32 `json:"price_per_day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ID == "" {
		writeBadRequest(w, "id is required")
		return
	}
	price := domain.DefaultPricePerDay
	if req.PricePerDay != nil {
		if *req.PricePerDay < 0 {
			writeBadRequest(w, "price_per_day must not be negative")
			return
		}
		price = *req.PricePerDay
	}
	vehicle := &domain.Vehicle{
		ID:          req.ID,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: price,
		Available:   true,
	}
	if err := h.agency.AddVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.agency.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if customer.ID == "" {
		writeBadRequest(w, "id is required")
		return
	}
	if err := h.agency.RegisterCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.agency.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) Rent(w http.ResponseWriter, r *http.Request) {
	var req service.RentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	conf, err := h.agency.Rent(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := parseAgreementID(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid agreement id")
		return
	}
	conf, err := h.agency.Return(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}

func (h *Handler) GetAgreement(w http.ResponseWriter, r *http.Request) {
	id, err := parseAgreementID(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid agreement id")
		return
	}
	agreement, err := h.agency.GetAgreement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (h *Handler) ListAgreements(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.agency.ListAgreements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"agreements": agreements})
}

func (h *Handler) ListAddons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"addons": h.addons.List()})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseAgreementID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAgreementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVehicleUnavailable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateVehicleID),
		errors.Is(err, domain.ErrInvalidRentalDays):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
