package handlers

import (
	"github.com/fitcore/fitcore-api/internal/services"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	User    *UserHandler
	Member  *MemberHandler
	PT      *PTHandler
	DayPass *DayPassHandler
	Receipt *ReceiptHandler
	Closing *ClosingHandler
	Expense *ExpenseHandler
	Staff   *StaffHandler
	Visitor *VisitorHandler
	Audit   *AuditHandler
}

// NewHandlers creates all handlers wired to their services
func NewHandlers(svcs *services.Services) *Handlers {
	loc := svcs.Closing.Location()

	return &Handlers{
		Health:  NewHealthHandler(),
		Auth:    NewAuthHandler(svcs.Auth),
		User:    NewUserHandler(svcs.User),
		Member:  NewMemberHandler(svcs.Member, loc),
		PT:      NewPTHandler(svcs.PT),
		DayPass: NewDayPassHandler(svcs.DayPass),
		Receipt: NewReceiptHandler(svcs.Ledger),
		Closing: NewClosingHandler(svcs.Closing, svcs.Export),
		Expense: NewExpenseHandler(svcs.Expense),
		Staff:   NewStaffHandler(svcs.Staff),
		Visitor: NewVisitorHandler(svcs.Visitor),
		Audit:   NewAuditHandler(svcs.Audit),
	}
}
