package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCache represents a cached dashboard result
type DashboardCache struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CacheKey  string          `gorm:"uniqueIndex;not null" json:"cache_key"`
	Data      json.RawMessage `gorm:"type:jsonb;not null" json:"data"`
	ExpiresAt time.Time       `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for DashboardCache
func (DashboardCache) TableName() string {
	return "dashboard_cache"
}

// DashboardSummary holds the headline financial indicators
type DashboardSummary struct {
	TotalReceivable   decimal.Decimal `json:"total_receivable"`
	OverdueCount      int             `json:"overdue_count"`
	ReceivedThisMonth decimal.Decimal `json:"received_this_month"`
	ExpensesThisMonth decimal.Decimal `json:"expenses_this_month"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	Series            []MonthlyPoint  `json:"series"`
}

// MonthlyPoint is one month of the receipts vs expenses series
type MonthlyPoint struct {
	Label    string          `json:"label"`
	Receipts decimal.Decimal `json:"receipts"`
	Expenses decimal.Decimal `json:"expenses"`
}
