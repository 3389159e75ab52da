package memory

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type agreementRepository struct {
	mu     sync.Mutex
	byID   map[int32]*domain.RentalAgreement
	order  []int32
	nextID int32
}

func NewAgreementRepository() repository.AgreementRepository {
	return &agreementRepository{
		byID:   make(map[int32]*domain.RentalAgreement),
		nextID: domain.FirstAgreementID,
	}
}

func (r *agreementRepository) Create(ctx context.Context, agreement *domain.RentalAgreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agreement.ID = r.nextID
	r.nextID++

	a := *agreement
	r.byID[a.ID] = &a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *agreementRepository) GetByID(ctx context.Context, id int32) (*domain.RentalAgreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAgreementNotFound
	}
	out := *a
	return &out, nil
}

func (r *agreementRepository) List(ctx context.Context) ([]domain.RentalAgreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agreements := make([]domain.RentalAgreement, 0, len(r.order))
	for _, id := range r.order {
		if a, ok := r.byID[id]; ok {
			agreements = append(agreements, *a)
		}
	}
	return agreements, nil
}

func (r *agreementRepository) Delete(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrAgreementNotFound
	}
	delete(r.byID, id)
	for i, aid := range r.order {
		if aid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
