package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, make, model, year, price_per_day, available) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, v.ID, v.Make, v.Model, v.Year, v.PricePerDay, v.Available)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateVehicleID
	}
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, make, model, year, price_per_day, available FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.PricePerDay, &v.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, make, model, year, price_per_day, available FROM vehicles ORDER BY seq`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, make, model, year, price_per_day, available FROM vehicles WHERE available ORDER BY seq`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.PricePerDay, &v.Available); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE vehicles SET available = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
