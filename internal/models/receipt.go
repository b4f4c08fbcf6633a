package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptCounter is the single-row record owning receipt number assignment.
// Every issuance path reads and advances this row inside one transaction;
// no caller may derive a number any other way.
type ReceiptCounter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Current   int64     `gorm:"not null" json:"current"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for ReceiptCounter
func (ReceiptCounter) TableName() string {
	return "receipt_counters"
}

// ReceiptCounterID is the fixed primary key of the singleton counter row
const ReceiptCounterID uint = 1

// ReceiptCounterDefaultStart is the number assigned to the first receipt
// when no counter row exists yet
const ReceiptCounterDefaultStart int64 = 1000

// Receipt is an immutable ledger entry. It is never updated or deleted
// after creation; item_details is a snapshot taken at issuance time and
// must be rendered verbatim, never re-derived from the live entity.
type Receipt struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReceiptNumber int64           `gorm:"uniqueIndex;not null" json:"receipt_number"`
	Type          string          `gorm:"size:20;not null;index" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;not null;default:cash" json:"payment_method"`
	ItemDetails   ItemDetails     `gorm:"serializer:json" json:"item_details"`
	MemberID      *uint           `gorm:"index" json:"member_id,omitempty"`
	PTPackageID   *uint           `gorm:"index" json:"pt_package_id,omitempty"`
	DayPassID     *uint           `gorm:"index" json:"day_pass_id,omitempty"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Receipt
func (Receipt) TableName() string {
	return "receipts"
}

// Receipt type constants
const (
	ReceiptTypeMember  = "member"
	ReceiptTypePT      = "pt"
	ReceiptTypeDayUse  = "day_use"
	ReceiptTypeInBody  = "inbody"
	ReceiptTypePayment = "payment"
)

// Payment method constants
const (
	PaymentMethodCash     = "cash"
	PaymentMethodVisa     = "visa"
	PaymentMethodInstapay = "instapay"
	PaymentMethodWallet   = "wallet"
)

// ValidReceiptType returns true if t is a recognized receipt type
func ValidReceiptType(t string) bool {
	switch t {
	case ReceiptTypeMember, ReceiptTypePT, ReceiptTypeDayUse, ReceiptTypeInBody, ReceiptTypePayment:
		return true
	}
	return false
}

// NormalizePaymentMethod maps absent or unrecognized methods to cash
func NormalizePaymentMethod(m string) string {
	switch m {
	case PaymentMethodCash, PaymentMethodVisa, PaymentMethodInstapay, PaymentMethodWallet:
		return m
	}
	return PaymentMethodCash
}

// ItemDetails is the per-transaction snapshot stored with a receipt.
// Exactly one branch is set, matching the receipt type. The struct is
// serialized as JSON alongside the receipt row.
type ItemDetails struct {
	Kind    string           `json:"kind"`
	Member  *MemberDetails   `json:"member,omitempty"`
	Renewal *RenewalDetails  `json:"renewal,omitempty"`
	PT      *PTDetails       `json:"pt,omitempty"`
	DayUse  *DayUseDetails   `json:"day_use,omitempty"`
	Payment *PaymentDetails  `json:"payment,omitempty"`
}

// Detail kind constants
const (
	DetailKindMember  = "member"
	DetailKindRenewal = "renewal"
	DetailKindPT      = "pt"
	DetailKindDayUse  = "day_use"
	DetailKindPayment = "payment"
)

// MemberDetails captures a new subscription at signup time
type MemberDetails struct {
	MemberNumber      int64           `json:"member_number"`
	Name              string          `json:"name"`
	SubscriptionStart string          `json:"subscription_start"`
	SubscriptionEnd   string          `json:"subscription_end"`
	Price             decimal.Decimal `json:"price"`
}

// RenewalDetails captures the old and new subscription window of a renewal
type RenewalDetails struct {
	MemberNumber    int64           `json:"member_number"`
	Name            string          `json:"name"`
	PreviousEnd     string          `json:"previous_end"`
	NewEnd          string          `json:"new_end"`
	Price           decimal.Decimal `json:"price"`
}

// PTDetails captures a personal-training package sale
type PTDetails struct {
	ClientName string          `json:"client_name"`
	CoachName  string          `json:"coach_name,omitempty"`
	Sessions   int             `json:"sessions"`
	Price      decimal.Decimal `json:"price"`
}

// DayUseDetails captures a day-use or InBody visit
type DayUseDetails struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// PaymentDetails captures a manual payment against a member's balance
type PaymentDetails struct {
	MemberNumber    int64           `json:"member_number"`
	Name            string          `json:"name"`
	RemainingBefore decimal.Decimal `json:"remaining_before"`
	RemainingAfter  decimal.Decimal `json:"remaining_after"`
	Note            string          `json:"note,omitempty"`
}

// NewMemberDetails builds the snapshot for a signup receipt
func NewMemberDetails(d MemberDetails) ItemDetails {
	return ItemDetails{Kind: DetailKindMember, Member: &d}
}

// NewRenewalDetails builds the snapshot for a renewal receipt
func NewRenewalDetails(d RenewalDetails) ItemDetails {
	return ItemDetails{Kind: DetailKindRenewal, Renewal: &d}
}

// NewPTDetails builds the snapshot for a PT sale receipt
func NewPTDetails(d PTDetails) ItemDetails {
	return ItemDetails{Kind: DetailKindPT, PT: &d}
}

// NewDayUseDetails builds the snapshot for a day-use or InBody receipt
func NewDayUseDetails(d DayUseDetails) ItemDetails {
	return ItemDetails{Kind: DetailKindDayUse, DayUse: &d}
}

// NewPaymentDetails builds the snapshot for a manual payment receipt
func NewPaymentDetails(d PaymentDetails) ItemDetails {
	return ItemDetails{Kind: DetailKindPayment, Payment: &d}
}

// ReceiptResponse is the JSON response format for receipts
type ReceiptResponse struct {
	ID            uint            `json:"id"`
	ReceiptNumber int64           `json:"receipt_number"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ItemDetails   ItemDetails     `json:"item_details"`
	MemberID      *uint           `json:"member_id,omitempty"`
	PTPackageID   *uint           `json:"pt_package_id,omitempty"`
	DayPassID     *uint           `json:"day_pass_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToResponse converts Receipt to ReceiptResponse
func (r *Receipt) ToResponse() ReceiptResponse {
	return ReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		Type:          r.Type,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ItemDetails:   r.ItemDetails,
		MemberID:      r.MemberID,
		PTPackageID:   r.PTPackageID,
		DayPassID:     r.DayPassID,
		CreatedAt:     r.CreatedAt,
	}
}
