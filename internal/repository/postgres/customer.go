package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Save(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, name, contact_info) VALUES ($1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, contact_info = EXCLUDED.contact_info`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.ContactInfo)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, contact_info FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.ContactInfo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
