package memory

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// vehicleRepository keeps vehicles in process memory. Listing order is
// insertion order.
type vehicleRepository struct {
	mu    sync.Mutex
	byID  map[string]*domain.Vehicle
	order []string
}

func NewVehicleRepository() repository.VehicleRepository {
	return &vehicleRepository{byID: make(map[string]*domain.Vehicle)}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[vehicle.ID]; ok {
		return domain.ErrDuplicateVehicleID
	}
	v := *vehicle
	r.byID[v.ID] = &v
	r.order = append(r.order, v.ID)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	out := *v
	return &out, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles := make([]domain.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		vehicles = append(vehicles, *r.byID[id])
	}
	return vehicles, nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var vehicles []domain.Vehicle
	for _, id := range r.order {
		if v := r.byID[id]; v.Available {
			vehicles = append(vehicles, *v)
		}
	}
	return vehicles, nil
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	v.Available = available
	return nil
}
