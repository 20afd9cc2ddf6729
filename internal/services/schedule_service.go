package services

import (
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/shopspring/decimal"
)

// ScheduleService handles installment schedule generation
type ScheduleService struct{}

// NewScheduleService creates a new schedule service
func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// GenerateInstallments splits a sale into its installment schedule.
//
// Each installment carries total/count rounded to cents; the last one
// absorbs the rounding difference so the schedule always sums exactly
// to the sale total. Installment i is due i months after the sale
// date, clamped to the last day of shorter months (a sale on Jan 31
// produces dues on Feb 29/28, Mar 31, Apr 30, ...).
func (s *ScheduleService) GenerateInstallments(sale *models.Sale) ([]models.Installment, error) {
	if sale.TotalValue.LessThanOrEqual(decimal.Zero) || sale.InstallmentCount < 1 || sale.SaleDate.IsZero() {
		return nil, ErrInvalidSale
	}

	count := sale.InstallmentCount
	per := sale.TotalValue.Div(decimal.NewFromInt(int64(count))).Round(2)
	last := sale.TotalValue.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))

	installments := make([]models.Installment, 0, count)
	for i := 0; i < count; i++ {
		value := per
		if i == count-1 {
			value = last
		}

		installments = append(installments, models.Installment{
			SaleID:  sale.ID,
			Number:  i + 1,
			Value:   value,
			DueDate: addMonthsClamped(sale.SaleDate, i+1),
			Status:  models.InstallmentStatusPending,
		})
	}

	return installments, nil
}

// addMonthsClamped adds n months to a date, clamping the day to the
// target month's length instead of letting the overflow spill into the
// following month (time.AddDate would turn Jan 31 + 1 month into Mar 3).
func addMonthsClamped(date time.Time, n int) time.Time {
	year, month, day := date.Date()
	target := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, date.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
