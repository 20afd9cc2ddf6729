package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a standalone business expense
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Value       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"value"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	Category    *string         `gorm:"index" json:"category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
