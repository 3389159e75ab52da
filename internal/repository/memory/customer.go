package memory

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	mu   sync.Mutex
	byID map[string]*domain.Customer
}

func NewCustomerRepository() repository.CustomerRepository {
	return &customerRepository{byID: make(map[string]*domain.Customer)}
}

func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *customer
	r.byID[c.ID] = &c
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	out := *c
	return &out, nil
}
