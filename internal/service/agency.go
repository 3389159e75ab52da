package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type agencyService struct {
	vehicleRepo   repository.VehicleRepository
	customerRepo  repository.CustomerRepository
	agreementRepo repository.AgreementRepository
	addons        AddonCatalog
}

func NewAgencyService(
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	agreementRepo repository.AgreementRepository,
	addons AddonCatalog,
) AgencyService {
	return &agencyService{
		vehicleRepo:   vehicleRepo,
		customerRepo:  customerRepo,
		agreementRepo: agreementRepo,
		addons:        addons,
	}
}

func (s *agencyService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return err
	}
	logger.Info("vehicle added", "vehicle_id", vehicle.ID, "make", vehicle.Make, "model", vehicle.Model)
	return nil
}

func (s *agencyService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *agencyService) ListVehicles(ctx context.Context, onlyAvailable bool) ([]domain.Vehicle, error) {
	var (
		vehicles []domain.Vehicle
		err      error
	)
	if onlyAvailable {
		vehicles, err = s.vehicleRepo.ListAvailable(ctx)
	} else {
		vehicles, err = s.vehicleRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("vehicle listing", "only_available", onlyAvailable, "count", len(vehicles))
	return vehicles, nil
}

func (s *agencyService) RegisterCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return err
	}
	logger.Info("customer registered", "customer_id", customer.ID)
	return nil
}

func (s *agencyService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// Rent opens a rental agreement. Checks run in order and any rejection
// short-circuits before any store is mutated.
func (s *agencyService) Rent(ctx context.Context, req RentRequest) (*RentalConfirmation, error) {
	if req.Days <= 0 {
		return nil, domain.ErrInvalidRentalDays
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrVehicleUnavailable, vehicle.ID)
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	var addon *domain.Addon
	addonKey := ""
	if req.AddonKey != "" {
		resolved, ok := s.addons.Resolve(req.AddonKey)
		if ok {
			addon = resolved
			addonKey = resolved.Key
		} else {
			logger.Warn("addon not found, renting without it", "addon", req.AddonKey)
		}
	}

	agreement := &domain.RentalAgreement{
		VehicleID:   vehicle.ID,
		CustomerID:  customer.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		RentalDays:  req.Days,
		PricePerDay: vehicle.PricePerDay,
		TotalCost:   vehicle.PricePerDay * req.Days,
		AddonKey:    addonKey,
		CreatedOn:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.SetAvailability(ctx, vehicle.ID, false); err != nil {
		// Keep the ledger consistent with the availability flag.
		if delErr := s.agreementRepo.Delete(ctx, agreement.ID); delErr != nil {
			logger.Error("failed to roll back agreement", "agreement_id", agreement.ID, "error", delErr)
		}
		return nil, err
	}
	vehicle.Available = false

	conf := &RentalConfirmation{
		Agreement: agreement,
		Vehicle:   vehicle,
		Customer:  customer,
		Addon:     addon,
		Text:      formatRentalConfirmation(agreement, vehicle, customer, addon),
	}
	logger.Info("vehicle rented",
		"agreement_id", agreement.ID,
		"vehicle_id", vehicle.ID,
		"customer_id", customer.ID,
		"total_cost", agreement.TotalCost,
	)
	return conf, nil
}

// Return closes an agreement and frees its vehicle. A vehicle missing from
// inventory is tolerated: the agreement is still removed.
func (s *agencyService) Return(ctx context.Context, agreementID int32) (*ReturnConfirmation, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.SetAvailability(ctx, agreement.VehicleID, true); err != nil {
		if !errors.Is(err, domain.ErrVehicleNotFound) {
			return nil, err
		}
		logger.Warn("returned vehicle no longer in inventory", "vehicle_id", agreement.VehicleID, "agreement_id", agreementID)
	}

	if err := s.agreementRepo.Delete(ctx, agreementID); err != nil {
		return nil, err
	}

	conf := &ReturnConfirmation{
		Agreement: agreement,
		Text: fmt.Sprintf("Return Confirmation\nAgreement #%d closed\nVehicle %s is available again",
			agreement.ID, agreement.VehicleID),
	}
	logger.Info("vehicle returned", "agreement_id", agreement.ID, "vehicle_id", agreement.VehicleID)
	return conf, nil
}

func (s *agencyService) GetAgreement(ctx context.Context, id int32) (*domain.RentalAgreement, error) {
	return s.agreementRepo.GetByID(ctx, id)
}

func (s *agencyService) ListAgreements(ctx context.Context) ([]domain.RentalAgreement, error) {
	return s.agreementRepo.List(ctx)
}

func formatRentalConfirmation(a *domain.RentalAgreement, v *domain.Vehicle, c *domain.Customer, addon *domain.Addon) string {
	addonLine := "none selected"
	if addon != nil {
		addonLine = fmt.Sprintf("%s (%s)", addon.Name, addon.Link)
	}
	lines := []string{
		"Rental Confirmation",
		fmt.Sprintf("Agreement #%d", a.ID),
		fmt.Sprintf("Customer: %s (ID: %s)", c.Name, c.ID),
		fmt.Sprintf("Vehicle: %s %s %d (ID: %s)", v.Make, v.Model, v.Year, v.ID),
		fmt.Sprintf("Dates: %s to %s", a.StartDate, a.EndDate),
		fmt.Sprintf("Days: %d", a.RentalDays),
		fmt.Sprintf("Price/day: %d", a.PricePerDay),
		fmt.Sprintf("Addon: %s", addonLine),
		fmt.Sprintf("Total cost: %d", a.TotalCost),
	}
	return strings.Join(lines, "\n")
}

// FormatVehicleListing renders an operator-facing listing of vehicles.
func FormatVehicleListing(vehicles []domain.Vehicle) string {
	if len(vehicles) == 0 {
		return "No vehicles available."
	}
	lines := make([]string, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		lines = append(lines, fmt.Sprintf("ID: %s  %s %s (%d)  Price/day: %d  Status: %s",
			v.ID, v.Make, v.Model, v.Year, v.PricePerDay, v.StatusLabel()))
	}
	return strings.Join(lines, "\n")
}
