package service_test

import (
	"context"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Save(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockAgreementRepo
type MockAgreementRepo struct {
	mock.Mock
}

func (m *MockAgreementRepo) Create(ctx context.Context, agreement *domain.RentalAgreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}
func (m *MockAgreementRepo) GetByID(ctx context.Context, id int32) (*domain.RentalAgreement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAgreement), args.Error(1)
}
func (m *MockAgreementRepo) List(ctx context.Context) ([]domain.RentalAgreement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalAgreement), args.Error(1)
}
func (m *MockAgreementRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
