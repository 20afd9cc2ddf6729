package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment represents one scheduled partial payment of a sale.
// Installments are batch-created when the sale is registered and only
// change through a pay/undo transition or a value/due-date correction.
type Installment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	SaleID        uint            `gorm:"not null;index" json:"sale_id"`
	Number        int             `gorm:"not null" json:"number"`
	Value         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"value"`
	DueDate       time.Time       `gorm:"type:date;not null;index" json:"due_date"`
	Status        string          `gorm:"default:pending;not null;index" json:"status"`
	PaidDate      *time.Time      `gorm:"type:date" json:"paid_date"`
	ReceiptNumber *string         `json:"receipt_number,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Associations
	Sale Sale `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
}

// TableName specifies the table name for Installment
func (Installment) TableName() string {
	return "installments"
}

// Installment status constants
const (
	InstallmentStatusPending = "pending"
	InstallmentStatusPaid    = "paid"
)

// MayPay returns true if the installment can transition to paid
func (i *Installment) MayPay() bool {
	return i.Status == InstallmentStatusPending
}

// MayUndo returns true if a payment can be reverted
func (i *Installment) MayUndo() bool {
	return i.Status == InstallmentStatusPaid
}

// MayEdit returns true if value/due date corrections are allowed
func (i *Installment) MayEdit() bool {
	return i.Status == InstallmentStatusPending
}

// IsOverdue returns true if the installment is pending and past due.
// Due dates carry no time of day, so an installment due today only
// becomes overdue once its due day has fully passed.
func (i *Installment) IsOverdue(asOf time.Time) bool {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	return i.Status == InstallmentStatusPending && i.DueDate.Before(day)
}

// OverdueDays returns the number of days overdue as of asOf
func (i *Installment) OverdueDays(asOf time.Time) int {
	if !i.IsOverdue(asOf) {
		return 0
	}
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	return int(day.Sub(i.DueDate).Hours() / 24)
}

// InstallmentResponse is the JSON response format for installments
type InstallmentResponse struct {
	ID            uint            `json:"id"`
	SaleID        uint            `json:"sale_id"`
	Number        int             `json:"number"`
	Value         decimal.Decimal `json:"value"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	ReceiptNumber *string         `json:"receipt_number,omitempty"`
	OverdueDays   int             `json:"overdue_days"`

	// Sale details for listing views
	SaleDescription string `json:"sale_description,omitempty"`
	ClientName      string `json:"client_name,omitempty"`
	ClientPhone     string `json:"client_phone,omitempty"`
}

// ToResponse converts Installment to InstallmentResponse
func (i *Installment) ToResponse() InstallmentResponse {
	resp := InstallmentResponse{
		ID:            i.ID,
		SaleID:        i.SaleID,
		Number:        i.Number,
		Value:         i.Value,
		DueDate:       i.DueDate,
		Status:        i.Status,
		PaidDate:      i.PaidDate,
		ReceiptNumber: i.ReceiptNumber,
		OverdueDays:   i.OverdueDays(time.Now()),
	}

	if i.Sale.ID != 0 {
		resp.SaleDescription = i.Sale.Description
		if i.Sale.Client.ID != 0 {
			resp.ClientName = i.Sale.Client.Name
			resp.ClientPhone = i.Sale.Client.Phone
		}
	}

	return resp
}
