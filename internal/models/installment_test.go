package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInstallmentIsOverdue(t *testing.T) {
	// asOf carries a time of day, as time.Now() does in production
	asOf := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  string
		dueDate time.Time
		overdue bool
	}{
		{
			name:    "due yesterday",
			status:  InstallmentStatusPending,
			dueDate: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
			overdue: true,
		},
		{
			name:    "due today keeps the whole day",
			status:  InstallmentStatusPending,
			dueDate: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			overdue: false,
		},
		{
			name:    "due tomorrow",
			status:  InstallmentStatusPending,
			dueDate: time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC),
			overdue: false,
		},
		{
			name:    "paid long ago never counts",
			status:  InstallmentStatusPaid,
			dueDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			overdue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := Installment{
				Status:  tt.status,
				Value:   decimal.New(10, 0),
				DueDate: tt.dueDate,
			}
			assert.Equal(t, tt.overdue, inst.IsOverdue(asOf))
		})
	}
}

func TestInstallmentOverdueDays(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

	inst := Installment{
		Status:  InstallmentStatusPending,
		Value:   decimal.New(10, 0),
		DueDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 5, inst.OverdueDays(asOf))

	inst.DueDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, inst.OverdueDays(asOf))
}
