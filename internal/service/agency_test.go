package service_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMockedAgency() (*MockVehicleRepo, *MockCustomerRepo, *MockAgreementRepo, service.AgencyService) {
	vehicleRepo := new(MockVehicleRepo)
	customerRepo := new(MockCustomerRepo)
	agreementRepo := new(MockAgreementRepo)
	svc := service.NewAgencyService(vehicleRepo, customerRepo, agreementRepo, service.NewStaticAddonCatalog())
	return vehicleRepo, customerRepo, agreementRepo, svc
}

func TestAgencyService_Rent(t *testing.T) {
	ctx := context.Background()

	// Fresh records per subtest: the service mutates the vehicle it gets.
	vehicle := func() *domain.Vehicle {
		return &domain.Vehicle{
			ID:          "C001",
			Make:        "Toyota",
			Model:       "Camry",
			Year:        2020,
			PricePerDay: 800,
			Available:   true,
		}
	}
	customer := &domain.Customer{ID: "P101", Name: "Ivan Sydorenko", ContactInfo: "ivan@example.com"}

	req := service.RentRequest{
		CustomerID: "P101",
		VehicleID:  "C001",
		StartDate:  "2025-11-15",
		EndDate:    "2025-11-20",
		Days:       5,
	}

	t.Run("Success", func(t *testing.T) {
		vehicleRepo, customerRepo, agreementRepo, svc := newMockedAgency()
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle(), nil)
		customerRepo.On("GetByID", ctx, "P101").Return(customer, nil)
		agreementRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
		vehicleRepo.On("SetAvailability", ctx, "C001", false).Return(nil)

		conf, err := svc.Rent(ctx, req)
		assert.NoError(t, err)
		assert.NotNil(t, conf)
		assert.Equal(t, int32(4000), conf.Agreement.TotalCost)
		assert.Equal(t, int32(800), conf.Agreement.PricePerDay)
		assert.False(t, conf.Vehicle.Available)
		assert.Contains(t, conf.Text, "Total cost: 4000")
		assert.Contains(t, conf.Text, "none selected")
		vehicleRepo.AssertCalled(t, "SetAvailability", ctx, "C001", false)
	})

	t.Run("Vehicle Not Found", func(t *testing.T) {
		vehicleRepo, _, agreementRepo, svc := newMockedAgency()
		vehicleRepo.On("GetByID", ctx, "C001").Return(nil, domain.ErrVehicleNotFound)

		conf, err := svc.Rent(ctx, req)
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
		assert.Nil(t, conf)
		agreementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle Unavailable", func(t *testing.T) {
		vehicleRepo, _, agreementRepo, svc := newMockedAgency()
		rented := vehicle()
		rented.Available = false
		vehicleRepo.On("GetByID", ctx, "C001").Return(rented, nil)

		conf, err := svc.Rent(ctx, req)
		assert.ErrorIs(t, err, domain.ErrVehicleUnavailable)
		assert.Nil(t, conf)
		agreementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		vehicleRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Customer Not Found", func(t *testing.T) {
		vehicleRepo, customerRepo, agreementRepo, svc := newMockedAgency()
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle(), nil)
		customerRepo.On("GetByID", ctx, "P101").Return(nil, domain.ErrCustomerNotFound)

		conf, err := svc.Rent(ctx, req)
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Nil(t, conf)
		agreementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Non Positive Days", func(t *testing.T) {
		vehicleRepo, _, _, svc := newMockedAgency()

		bad := req
		bad.Days = 0
		conf, err := svc.Rent(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRentalDays)
		assert.Nil(t, conf)
		vehicleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Addon Proceeds Without It", func(t *testing.T) {
		vehicleRepo, customerRepo, agreementRepo, svc := newMockedAgency()
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle(), nil)
		customerRepo.On("GetByID", ctx, "P101").Return(customer, nil)
		agreementRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
		vehicleRepo.On("SetAvailability", ctx, "C001", false).Return(nil)

		withAddon := req
		withAddon.AddonKey = "polka"
		conf, err := svc.Rent(ctx, withAddon)
		assert.NoError(t, err)
		assert.Nil(t, conf.Addon)
		assert.Equal(t, "", conf.Agreement.AddonKey)
		assert.Contains(t, conf.Text, "none selected")
	})

	t.Run("Resolved Addon Recorded", func(t *testing.T) {
		vehicleRepo, customerRepo, agreementRepo, svc := newMockedAgency()
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle(), nil)
		customerRepo.On("GetByID", ctx, "P101").Return(customer, nil)
		agreementRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
		vehicleRepo.On("SetAvailability", ctx, "C001", false).Return(nil)

		withAddon := req
		withAddon.AddonKey = "RoadTrip"
		conf, err := svc.Rent(ctx, withAddon)
		assert.NoError(t, err)
		assert.NotNil(t, conf.Addon)
		assert.Equal(t, "roadtrip", conf.Agreement.AddonKey)
		assert.Contains(t, conf.Text, "Road Trip Classics")
	})
}

func TestAgencyService_Return(t *testing.T) {
	ctx := context.Background()

	agreement := &domain.RentalAgreement{
		ID:         1001,
		VehicleID:  "C001",
		CustomerID: "P101",
		RentalDays: 5,
	}

	t.Run("Success", func(t *testing.T) {
		vehicleRepo, _, agreementRepo, svc := newMockedAgency()
		agreementRepo.On("GetByID", ctx, int32(1001)).Return(agreement, nil)
		vehicleRepo.On("SetAvailability", ctx, "C001", true).Return(nil)
		agreementRepo.On("Delete", ctx, int32(1001)).Return(nil)

		conf, err := svc.Return(ctx, 1001)
		assert.NoError(t, err)
		assert.NotNil(t, conf)
		assert.Contains(t, conf.Text, "Agreement #1001 closed")
		vehicleRepo.AssertCalled(t, "SetAvailability", ctx, "C001", true)
		agreementRepo.AssertCalled(t, "Delete", ctx, int32(1001))
	})

	t.Run("Agreement Not Found", func(t *testing.T) {
		vehicleRepo, _, agreementRepo, svc := newMockedAgency()
		agreementRepo.On("GetByID", ctx, int32(9999)).Return(nil, domain.ErrAgreementNotFound)

		conf, err := svc.Return(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrAgreementNotFound)
		assert.Nil(t, conf)
		vehicleRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
		agreementRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle Gone From Inventory", func(t *testing.T) {
		vehicleRepo, _, agreementRepo, svc := newMockedAgency()
		agreementRepo.On("GetByID", ctx, int32(1001)).Return(agreement, nil)
		vehicleRepo.On("SetAvailability", ctx, "C001", true).Return(domain.ErrVehicleNotFound)
		agreementRepo.On("Delete", ctx, int32(1001)).Return(nil)

		conf, err := svc.Return(ctx, 1001)
		assert.NoError(t, err)
		assert.NotNil(t, conf)
		agreementRepo.AssertCalled(t, "Delete", ctx, int32(1001))
	})
}

// Full rent/return cycle against the in-memory repositories.
func TestAgencyService_RentReturnCycle(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAgencyService(
		memory.NewVehicleRepository(),
		memory.NewCustomerRepository(),
		memory.NewAgreementRepository(),
		service.NewStaticAddonCatalog(),
	)

	assert.NoError(t, svc.AddVehicle(ctx, &domain.Vehicle{
		ID: "234", Make: "Toyota", Model: "Corolla", Year: 2021, PricePerDay: 800, Available: true,
	}))
	assert.NoError(t, svc.RegisterCustomer(ctx, &domain.Customer{ID: "P101", Name: "Ivan", ContactInfo: "ivan@example.com"}))
	assert.NoError(t, svc.RegisterCustomer(ctx, &domain.Customer{ID: "P102", Name: "Olena", ContactInfo: "olena@example.com"}))

	conf, err := svc.Rent(ctx, service.RentRequest{
		CustomerID: "P101", VehicleID: "234",
		StartDate: "2025-11-15", EndDate: "2025-11-20", Days: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(1001), conf.Agreement.ID)
	assert.Equal(t, int32(4000), conf.Agreement.TotalCost)

	v, err := svc.GetVehicle(ctx, "234")
	assert.NoError(t, err)
	assert.False(t, v.Available)

	// Double booking rejected without touching ledger or inventory.
	_, err = svc.Rent(ctx, service.RentRequest{
		CustomerID: "P102", VehicleID: "234",
		StartDate: "2025-11-21", EndDate: "2025-11-23", Days: 2,
	})
	assert.ErrorIs(t, err, domain.ErrVehicleUnavailable)
	agreements, err := svc.ListAgreements(ctx)
	assert.NoError(t, err)
	assert.Len(t, agreements, 1)

	_, err = svc.Return(ctx, conf.Agreement.ID)
	assert.NoError(t, err)

	v, err = svc.GetVehicle(ctx, "234")
	assert.NoError(t, err)
	assert.True(t, v.Available)

	agreements, err = svc.ListAgreements(ctx)
	assert.NoError(t, err)
	assert.Len(t, agreements, 0)

	// Price changes after creation never reach an existing agreement.
	conf2, err := svc.Rent(ctx, service.RentRequest{
		CustomerID: "P102", VehicleID: "234",
		StartDate: "2025-12-01", EndDate: "2025-12-03", Days: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(1002), conf2.Agreement.ID, "agreement ids keep increasing across removals")
	assert.Equal(t, int32(1600), conf2.Agreement.TotalCost)
}

func TestFormatVehicleListing(t *testing.T) {
	assert.Equal(t, "No vehicles available.", service.FormatVehicleListing(nil))

	listing := service.FormatVehicleListing([]domain.Vehicle{
		{ID: "C001", Make: "Toyota", Model: "Camry", Year: 2020, PricePerDay: 800, Available: true},
		{ID: "C003", Make: "BMW", Model: "X5", Year: 2023, PricePerDay: 1500, Available: false},
	})
	assert.Contains(t, listing, "ID: C001")
	assert.Contains(t, listing, "Status: Available")
	assert.Contains(t, listing, "Status: Rented")
}
