package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type agreementRepository struct {
	db *sql.DB
}

func NewAgreementRepository(db *sql.DB) repository.AgreementRepository {
	return &agreementRepository{db: db}
}

func (r *agreementRepository) Create(ctx context.Context, a *domain.RentalAgreement) error {
	if a.CreatedOn == "" {
		a.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO agreements (vehicle_id, customer_id, start_date, end_date, rental_days, price_per_day, total_cost, addon_key, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.VehicleID, a.CustomerID, a.StartDate, a.EndDate, a.RentalDays, a.PricePerDay, a.TotalCost, a.AddonKey, a.CreatedOn,
	).Scan(&a.ID)
}

func (r *agreementRepository) GetByID(ctx context.Context, id int32) (*domain.RentalAgreement, error) {
	a := &domain.RentalAgreement{}
	query := `SELECT id, vehicle_id, customer_id, start_date, end_date, rental_days, price_per_day, total_cost, addon_key, created_on
	          FROM agreements WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.VehicleID, &a.CustomerID, &a.StartDate, &a.EndDate, &a.RentalDays, &a.PricePerDay, &a.TotalCost, &a.AddonKey, &a.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAgreementNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agreementRepository) List(ctx context.Context) ([]domain.RentalAgreement, error) {
	query := `SELECT id, vehicle_id, customer_id, start_date, end_date, rental_days, price_per_day, total_cost, addon_key, created_on
	          FROM agreements ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agreements []domain.RentalAgreement
	for rows.Next() {
		var a domain.RentalAgreement
		if err := rows.Scan(&a.ID, &a.VehicleID, &a.CustomerID, &a.StartDate, &a.EndDate, &a.RentalDays, &a.PricePerDay, &a.TotalCost, &a.AddonKey, &a.CreatedOn); err != nil {
			return nil, err
		}
		agreements = append(agreements, a)
	}
	return agreements, rows.Err()
}

func (r *agreementRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agreements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAgreementNotFound
	}
	return nil
}
