package services

import (
	"github.com/fitcore/fitcore-api/internal/config"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/internal/storage"
	"gorm.io/gorm"
)

// Services holds all service instances
type Services struct {
	Auth    *AuthService
	User    *UserService
	Ledger  *LedgerService
	Closing *ClosingService
	Member  *MemberService
	PT      *PTService
	DayPass *DayPassService
	Expense *ExpenseService
	Staff   *StaffService
	Visitor *VisitorService
	Audit   *AuditService
	Export  *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, storage *storage.LocalStorage, cfg *config.Config, db *gorm.DB) *Services {
	auditSvc := NewAuditService(db)
	ledgerSvc := NewLedgerService(repos.Ledger, auditSvc)
	closingSvc := NewClosingService(repos.Ledger, repos.Expense, cfg.Location())

	return &Services{
		Auth:    NewAuthService(repos.User, repos.RefreshToken, cfg),
		User:    NewUserService(repos.User, auditSvc),
		Ledger:  ledgerSvc,
		Closing: closingSvc,
		Member:  NewMemberService(repos.Member, ledgerSvc, auditSvc, storage),
		PT:      NewPTService(repos.PTPackage, repos.Member, repos.Staff, ledgerSvc),
		DayPass: NewDayPassService(repos.DayPass, ledgerSvc),
		Expense: NewExpenseService(repos.Expense, repos.Staff),
		Staff:   NewStaffService(repos.Staff),
		Visitor: NewVisitorService(repos.Visitor, cfg.VisitorRetentionDays),
		Audit:   auditSvc,
		Export:  NewExportService(closingSvc),
	}
}
