package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shoplite/backend/internal/domain/ledger"
	"github.com/shoplite/backend/internal/domain/shared"
)

func newMockRepository(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func purchaseColumns() []string {
	return []string{
		"id", "created_at", "updated_at",
		"supplier_id", "supplier_name", "total_amount", "paid_amount", "balance",
		"purchase_date", "accounting_period", "record_status", "status",
	}
}

func TestGormPurchaseRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockRepository(t)
		defer mockDB.Close()
		repo := NewGormPurchaseRepository(gormDB)

		id := uuid.New()
		supplierID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(purchaseColumns()).
			AddRow(id, now, now, supplierID, "Alpha Trading", "1000.00", "400.00", "600.00",
				time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "2025-01", "ACTIVE", "PARTIAL")

		mock.ExpectQuery(`SELECT \* FROM "purchases" WHERE id = \$1 ORDER BY "purchases"\."id" LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		purchase, err := repo.FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, purchase.ID)
		assert.Equal(t, "Alpha Trading", purchase.SupplierName)
		assert.Equal(t, ledger.Period("2025-01"), purchase.AccountingPeriod)
		assert.Equal(t, "600", purchase.Balance.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockRepository(t)
		defer mockDB.Close()
		repo := NewGormPurchaseRepository(gormDB)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "purchases" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows(purchaseColumns()))

		purchase, err := repo.FindByID(context.Background(), id)

		assert.Nil(t, purchase)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPurchaseRepository_List(t *testing.T) {
	gormDB, mock, mockDB := newMockRepository(t)
	defer mockDB.Close()
	repo := NewGormPurchaseRepository(gormDB)

	supplierID := uuid.New()
	purchaseID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "purchases" WHERE accounting_period = \$1 AND supplier_id = \$2`).
		WithArgs("2025-01", supplierID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows(purchaseColumns()).
		AddRow(purchaseID, now, now, supplierID, "Alpha Trading", "500.00", "0.00", "500.00",
			time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "2025-01", "ACTIVE", "PENDING")

	mock.ExpectQuery(`SELECT \* FROM "purchases" WHERE accounting_period = \$1 AND supplier_id = \$2 ORDER BY purchase_date DESC, id LIMIT \$3`).
		WithArgs("2025-01", supplierID, 20).
		WillReturnRows(rows)

	filter := ledger.PurchaseFilter{SupplierID: supplierID}
	filter.Period = ledger.Period("2025-01")

	purchases, total, err := repo.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, purchases, 1)
	assert.Equal(t, purchaseID, purchases[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPurchaseRepository_ListPayments(t *testing.T) {
	gormDB, mock, mockDB := newMockRepository(t)
	defer mockDB.Close()
	repo := NewGormPurchaseRepository(gormDB)

	purchaseID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "purchase_id", "amount", "pay_date", "accounting_period", "status"}).
		AddRow(uuid.New(), now, now, purchaseID, "100.00", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "2025-01", "ACTIVE").
		AddRow(uuid.New(), now, now, purchaseID, "50.00", time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), "2025-01", "VOIDED")

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE purchase_id = \$1 ORDER BY pay_date, id`).
		WithArgs(purchaseID).
		WillReturnRows(rows)

	payments, err := repo.ListPayments(context.Background(), purchaseID)

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, ledger.RecordStatusVoided, payments[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
