package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type CustomerRepository interface {
	// Save inserts or overwrites a customer record (last write wins).
	Save(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

type AgreementRepository interface {
	// Create stores the agreement and assigns its id. Ids are strictly
	// increasing and never reused, even after removal.
	Create(ctx context.Context, agreement *domain.RentalAgreement) error
	GetByID(ctx context.Context, id int32) (*domain.RentalAgreement, error)
	List(ctx context.Context) ([]domain.RentalAgreement, error)
	Delete(ctx context.Context, id int32) error
}
