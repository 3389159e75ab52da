package service

import (
	"context"

	"carrental-backend/internal/domain"
)

// RentRequest carries everything needed to open a rental agreement.
// AddonKey is optional; an unresolvable key downgrades to "no addon" with a
// warning rather than failing the rent.
type RentRequest struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int32  `json:"days"`
	AddonKey   string `json:"addon,omitempty"`
}

// RentalConfirmation is the observable output of a successful rent.
type RentalConfirmation struct {
	Agreement *domain.RentalAgreement `json:"agreement"`
	Vehicle   *domain.Vehicle         `json:"vehicle"`
	Customer  *domain.Customer        `json:"customer"`
	Addon     *domain.Addon           `json:"addon,omitempty"`
	Text      string                  `json:"confirmation"`
}

// ReturnConfirmation is the observable output of a successful return.
type ReturnConfirmation struct {
	Agreement *domain.RentalAgreement `json:"agreement"`
	Text      string                  `json:"confirmation"`
}

type AgencyService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error)

	RegisterCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)

	Rent(ctx context.Context, req RentRequest) (*RentalConfirmation, error)
	Return(ctx context.Context, agreementID int32) (*ReturnConfirmation, error)
	GetAgreement(ctx context.Context, id int32) (*domain.RentalAgreement, error)
	ListAgreements(ctx context.Context) ([]domain.RentalAgreement, error)
}

// AddonCatalog resolves addon keys to their metadata. Implementations are
// read-only; any key→metadata provider can stand in.
type AddonCatalog interface {
	Resolve(key string) (*domain.Addon, bool)
	List() []domain.Addon
}
