package postgres_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAgreementRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAgreementRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		agreement := &domain.RentalAgreement{
			VehicleID:   "C001",
			CustomerID:  "P101",
			StartDate:   "2025-11-15",
			EndDate:     "2025-11-20",
			RentalDays:  5,
			PricePerDay: 800,
			TotalCost:   4000,
		}

		mock.ExpectQuery("INSERT INTO agreements").
			WithArgs(agreement.VehicleID, agreement.CustomerID, agreement.StartDate, agreement.EndDate,
				agreement.RentalDays, agreement.PricePerDay, agreement.TotalCost, agreement.AddonKey, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1001))

		err := repo.Create(ctx, agreement)
		assert.NoError(t, err)
		assert.Equal(t, int32(1001), agreement.ID)
	})
}

func TestAgreementRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAgreementRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "vehicle_id", "customer_id", "start_date", "end_date", "rental_days", "price_per_day", "total_cost", "addon_key", "created_on"}).
			AddRow(1001, "C001", "P101", "2025-11-15", "2025-11-20", 5, 800, 4000, "", "2025-11-14T10:00:00Z")

		mock.ExpectQuery("SELECT (.+) FROM agreements WHERE id = \\$1").
			WithArgs(int32(1001)).
			WillReturnRows(rows)

		agreement, err := repo.GetByID(ctx, 1001)
		assert.NoError(t, err)
		assert.NotNil(t, agreement)
		assert.Equal(t, int32(4000), agreement.TotalCost)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM agreements WHERE id = \\$1").
			WithArgs(int32(9999)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "customer_id", "start_date", "end_date", "rental_days", "price_per_day", "total_cost", "addon_key", "created_on"}))

		agreement, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrAgreementNotFound)
		assert.Nil(t, agreement)
	})
}

func TestAgreementRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAgreementRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM agreements WHERE id = \\$1").
			WithArgs(int32(1001)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1001))
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM agreements WHERE id = \\$1").
			WithArgs(int32(9999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 9999), domain.ErrAgreementNotFound)
	})
}
