package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockLedgerRepository creates a ledger repository over a mocked SQL
// connection so counter behavior can be pinned without a database
func newMockLedgerRepository(t *testing.T, start int64) (LedgerRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

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

	return NewLedgerRepository(gormDB, start), mock, mockDB
}

func TestLedgerRepository_PeekNext_FreshSystemReturnsStart(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "receipt_counters"`).
		WillReturnError(gorm.ErrRecordNotFound)

	next, err := repo.PeekNext(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), next)
	// only the read ran; a peek must not create or advance the counter
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_PeekNext_ReturnsCurrentWhenRowExists(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "current", "updated_at"}).
		AddRow(1, 1042, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "receipt_counters"`).
		WillReturnRows(rows)

	next, err := repo.PeekNext(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1042), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_StartBelowOneFallsBackToDefault(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 0)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "receipt_counters"`).
		WillReturnError(gorm.ErrRecordNotFound)

	next, err := repo.PeekNext(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.ReceiptCounterDefaultStart, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Issue_LazilyCreatesCounterAtStart(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "receipt_counters" .* FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`INSERT INTO "receipt_counters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "receipt_counters" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt := &models.Receipt{
		Type:          models.ReceiptTypeDayUse,
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: models.PaymentMethodCash,
	}
	err := repo.Issue(context.Background(), receipt)

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), receipt.ReceiptNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Issue_CounterCreationRaceIsRetryable(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "receipt_counters" .* FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	// another transaction created the row between the read and the insert
	mock.ExpectQuery(`INSERT INTO "receipt_counters"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	receipt := &models.Receipt{
		Type:   models.ReceiptTypeMember,
		Amount: decimal.NewFromInt(500),
	}
	err := repo.Issue(context.Background(), receipt)

	assert.ErrorIs(t, err, ErrCounterConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Issue_DuplicateNumberMapped(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	mock.ExpectBegin()
	rows := sqlmock.NewRows([]string{"id", "current", "updated_at"}).
		AddRow(1, 1500, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "receipt_counters" .* FOR UPDATE`).
		WillReturnRows(rows)
	// counter was rebased at an issued number; the unique index fires
	mock.ExpectQuery(`INSERT INTO "receipts"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	receipt := &models.Receipt{
		Type:   models.ReceiptTypeMember,
		Amount: decimal.NewFromInt(500),
	}
	err := repo.Issue(context.Background(), receipt)

	assert.ErrorIs(t, err, ErrReceiptNumberTaken)
	// the colliding number stays on the receipt so callers can advance past it
	assert.Equal(t, int64(1500), receipt.ReceiptNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_AdvancePast_CreatesRowWhenMissing(t *testing.T) {
	repo, mock, mockDB := newMockLedgerRepository(t, 1000)
	defer mockDB.Close()

	mock.ExpectExec(`UPDATE "receipt_counters" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "receipt_counters" .* ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.AdvancePast(context.Background(), 1500)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
