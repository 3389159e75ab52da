package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.CustomerRepository
	repository.AgreementRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		VehicleRepository:   NewVehicleRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		AgreementRepository: NewAgreementRepository(db),
	}
}
