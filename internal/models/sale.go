package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a sale to a client, payable in monthly installments.
// A sale is immutable once created; corrections happen at the installment level.
type Sale struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ClientID         uint            `gorm:"not null;index" json:"client_id"`
	Description      string          `gorm:"not null" json:"description"`
	TotalValue       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_value"`
	SaleDate         time.Time       `gorm:"type:date;not null" json:"sale_date"`
	InstallmentCount int             `gorm:"not null" json:"installment_count"`
	CreatedAt        time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Associations
	Client       Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Installments []Installment `gorm:"foreignKey:SaleID" json:"installments,omitempty"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// SaleResponse is the JSON response format for sales
type SaleResponse struct {
	ID               uint                  `json:"id"`
	ClientID         uint                  `json:"client_id"`
	ClientName       string                `json:"client_name,omitempty"`
	Description      string                `json:"description"`
	TotalValue       decimal.Decimal       `json:"total_value"`
	SaleDate         time.Time             `json:"sale_date"`
	InstallmentCount int                   `json:"installment_count"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
}

// ToResponse converts Sale to SaleResponse
func (s *Sale) ToResponse() SaleResponse {
	resp := SaleResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		Description:      s.Description,
		TotalValue:       s.TotalValue,
		SaleDate:         s.SaleDate,
		InstallmentCount: s.InstallmentCount,
	}

	if s.Client.ID != 0 {
		resp.ClientName = s.Client.Name
	}

	for i := range s.Installments {
		resp.Installments = append(resp.Installments, s.Installments[i].ToResponse())
	}

	return resp
}
