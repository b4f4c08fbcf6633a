package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrReceiptNumberTaken is returned when the assigned receipt number
// collides with an already-issued receipt. This happens after the counter
// was rebased at or below an issued number; callers recover by advancing
// the counter past the conflict and reissuing from scratch.
var ErrReceiptNumberTaken = errors.New("receipt number already issued")

// ErrCounterConflict is returned when the counter row itself hit a write
// conflict (e.g. two transactions racing to create it). Retryable.
var ErrCounterConflict = errors.New("receipt counter conflict")

// LedgerRepository defines the interface for receipt ledger data access.
// It is the only component allowed to assign receipt numbers.
type LedgerRepository interface {
	Issue(ctx context.Context, receipt *models.Receipt) error
	PeekNext(ctx context.Context) (int64, error)
	ResetCounter(ctx context.Context, newStart int64) (int64, error)
	AdvancePast(ctx context.Context, issued int64) error
	FindByID(ctx context.Context, id uint) (*models.Receipt, error)
	FindByNumber(ctx context.Context, number int64) (*models.Receipt, error)
	FindInWindow(ctx context.Context, from, to time.Time) ([]models.Receipt, error)
	List(ctx context.Context, query *ListQuery) ([]models.Receipt, int64, error)
}

type ledgerRepository struct {
	db    *gorm.DB
	start int64
}

// NewLedgerRepository creates a new ledger repository. start is the
// number assigned to the very first receipt when no counter row exists.
func NewLedgerRepository(db *gorm.DB, start int64) LedgerRepository {
	if start < 1 {
		start = models.ReceiptCounterDefaultStart
	}
	return &ledgerRepository{db: db, start: start}
}

// Issue assigns the next receipt number and persists the receipt in one
// transaction. The counter row is locked FOR UPDATE so two concurrent
// callers can never observe the same value; the read-assign-advance
// sequence commits or rolls back as a unit.
func (r *ledgerRepository) Issue(ctx context.Context, receipt *models.Receipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter models.ReceiptCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, models.ReceiptCounterID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = models.ReceiptCounter{ID: models.ReceiptCounterID, Current: r.start}
			if err := tx.Create(&counter).Error; err != nil {
				// another transaction created the row first
				if isUniqueViolation(err) {
					return ErrCounterConflict
				}
				return err
			}
		} else if err != nil {
			return err
		}

		receipt.ReceiptNumber = counter.Current
		if err := tx.Create(receipt).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrReceiptNumberTaken
			}
			return err
		}

		return tx.Model(&models.ReceiptCounter{}).
			Where("id = ?", models.ReceiptCounterID).
			Update("current", counter.Current+1).Error
	})
}

// PeekNext returns the number the next issuance would receive. Advisory
// only; it does not create or advance the counter.
func (r *ledgerRepository) PeekNext(ctx context.Context) (int64, error) {
	var counter models.ReceiptCounter
	err := r.db.WithContext(ctx).First(&counter, models.ReceiptCounterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.start, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Current, nil
}

// ResetCounter rebases the sequence to newStart. No guard against
// rebasing at or below an issued number; the uniqueness constraint on
// receipt_number surfaces that at the next issuance.
func (r *ledgerRepository) ResetCounter(ctx context.Context, newStart int64) (int64, error) {
	counter := models.ReceiptCounter{ID: models.ReceiptCounterID, Current: newStart}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"current": newStart}),
		}).
		Create(&counter).Error
	if err != nil {
		return 0, err
	}
	return newStart, nil
}

// AdvancePast moves the counter beyond an already-issued number so a
// reissue after a collision gets a fresh value. GREATEST keeps a
// concurrent advance from moving the counter backwards.
func (r *ledgerRepository) AdvancePast(ctx context.Context, issued int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.ReceiptCounter{}).
		Where("id = ?", models.ReceiptCounterID).
		Update("current", gorm.Expr("GREATEST(current, ?)", issued+1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		_, err := r.ResetCounter(ctx, issued+1)
		return err
	}
	return nil
}

func (r *ledgerRepository) FindByID(ctx context.Context, id uint) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.WithContext(ctx).First(&receipt, id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *ledgerRepository) FindByNumber(ctx context.Context, number int64) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.WithContext(ctx).
		Where("receipt_number = ?", number).
		First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// FindInWindow returns receipts whose created_at falls inside the
// inclusive [from, to] window, oldest first.
func (r *ledgerRepository) FindInWindow(ctx context.Context, from, to time.Time) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC, receipt_number ASC").
		Find(&receipts).Error
	return receipts, err
}

func (r *ledgerRepository) List(ctx context.Context, query *ListQuery) ([]models.Receipt, int64, error) {
	var receipts []models.Receipt
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Receipt{})

	if query.Filters["type"] != "" {
		db = db.Where("type = ?", query.Filters["type"])
	}
	if query.Filters["payment_method"] != "" {
		db = db.Where("payment_method = ?", query.Filters["payment_method"])
	}
	if query.Filters["member_id"] != "" {
		db = db.Where("member_id = ?", query.Filters["member_id"])
	}

	db.Count(&total)

	db = db.Order("receipt_number DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&receipts).Error
	return receipts, total, err
}
