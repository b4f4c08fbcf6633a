package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Ledger       LedgerRepository
	Member       MemberRepository
	PTPackage    PTPackageRepository
	DayPass      DayPassRepository
	Staff        StaffRepository
	Expense      ExpenseRepository
	Visitor      VisitorRepository
}

// NewRepositories creates all repository instances. counterStart seeds
// the receipt counter the first time the ledger is used.
func NewRepositories(db *gorm.DB, counterStart int64) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		Ledger:       NewLedgerRepository(db, counterStart),
		Member:       NewMemberRepository(db),
		PTPackage:    NewPTPackageRepository(db),
		DayPass:      NewDayPassRepository(db),
		Staff:        NewStaffRepository(db),
		Expense:      NewExpenseRepository(db),
		Visitor:      NewVisitorRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
