package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
	"github.com/shopspring/decimal"
)

// DashboardSummaryCacheKey is invalidated whenever a sale, installment
// or expense changes.
const DashboardSummaryCacheKey = "dashboard_summary"

// dashboardCacheTTL bounds staleness when invalidation is missed.
const dashboardCacheTTL = 15 * time.Minute

// seriesMonths is how far back the receipts/expenses chart reaches.
const seriesMonths = 6

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type DashboardService struct {
	installmentRepo repository.InstallmentRepository
	expenseRepo     repository.ExpenseRepository
	dashboardRepo   repository.DashboardRepository
}

func NewDashboardService(
	installmentRepo repository.InstallmentRepository,
	expenseRepo repository.ExpenseRepository,
	dashboardRepo repository.DashboardRepository,
) *DashboardService {
	return &DashboardService{
		installmentRepo: installmentRepo,
		expenseRepo:     expenseRepo,
		dashboardRepo:   dashboardRepo,
	}
}

// GetSummary returns the dashboard aggregates, served from cache when a
// fresh entry exists.
func (s *DashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	if cached, ok, err := s.dashboardRepo.GetCache(ctx, DashboardSummaryCacheKey); err == nil && ok {
		var summary models.DashboardSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return &summary, nil
		}
	}

	summary, err := s.ComputeSummary(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := s.dashboardRepo.SetCache(ctx, DashboardSummaryCacheKey, data, dashboardCacheTTL); err != nil {
			logger.Warn("failed to cache dashboard summary", "error", err)
		}
	}

	return summary, nil
}

// ComputeSummary builds the summary from scratch as of the given instant.
func (s *DashboardService) ComputeSummary(ctx context.Context, asOf time.Time) (*models.DashboardSummary, error) {
	pending, err := s.installmentRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := monthWindow(asOf, 0)

	paid, err := s.installmentRepo.FindPaidBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.FindBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	received := SumReceivedInWindow(paid, monthStart, monthEnd)
	spent := SumExpensesInWindow(expenses, monthStart, monthEnd)

	return &models.DashboardSummary{
		TotalReceivable:   SumPendingReceivable(pending),
		OverdueCount:      CountOverdue(pending, asOf),
		ReceivedThisMonth: received,
		ExpensesThisMonth: spent,
		NetProfit:         NetProfit(received, spent),
		Series:            s.TrailingMonthlySeries(ctx, asOf, seriesMonths),
	}, nil
}

// TrailingMonthlySeries builds the month-by-month receipts and expenses
// chart, oldest month first. Months are fetched concurrently; a month
// whose queries fail is charted as zero so one bad month cannot take
// the whole dashboard down.
func (s *DashboardService) TrailingMonthlySeries(ctx context.Context, asOf time.Time, months int) []models.MonthlyPoint {
	series := make([]models.MonthlyPoint, months)

	var wg sync.WaitGroup
	for i := 0; i < months; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			offset := -(months - 1 - i)
			start, end := monthWindow(asOf, offset)
			point := models.MonthlyPoint{
				Label:    monthLabel(start),
				Receipts: decimal.Zero,
				Expenses: decimal.Zero,
			}

			paid, err := s.installmentRepo.FindPaidBetween(ctx, start, end)
			if err != nil {
				logger.Warn("dashboard series month degraded", "month", point.Label, "error", err)
				series[i] = point
				return
			}

			expenses, err := s.expenseRepo.FindBetween(ctx, start, end)
			if err != nil {
				logger.Warn("dashboard series month degraded", "month", point.Label, "error", err)
				series[i] = point
				return
			}

			point.Receipts = SumReceivedInWindow(paid, start, end)
			point.Expenses = SumExpensesInWindow(expenses, start, end)
			series[i] = point
		}(i)
	}
	wg.Wait()

	return series
}

// SumPendingReceivable totals the value of every pending installment.
func SumPendingReceivable(installments []models.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range installments {
		if inst.Status == models.InstallmentStatusPending {
			total = total.Add(inst.Value)
		}
	}
	return total
}

// CountOverdue counts pending installments already past due at asOf.
func CountOverdue(installments []models.Installment, asOf time.Time) int {
	count := 0
	for _, inst := range installments {
		if inst.IsOverdue(asOf) {
			count++
		}
	}
	return count
}

// SumReceivedInWindow totals paid installments whose payment date falls
// inside [start, end).
func SumReceivedInWindow(installments []models.Installment, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range installments {
		if inst.Status != models.InstallmentStatusPaid || inst.PaidDate == nil {
			continue
		}
		if inWindow(*inst.PaidDate, start, end) {
			total = total.Add(inst.Value)
		}
	}
	return total
}

// SumExpensesInWindow totals expenses dated inside [start, end).
func SumExpensesInWindow(expenses []models.Expense, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if inWindow(exp.ExpenseDate, start, end) {
			total = total.Add(exp.Value)
		}
	}
	return total
}

// NetProfit is receipts minus expenses; negative when spending exceeds
// what came in.
func NetProfit(received, spent decimal.Decimal) decimal.Decimal {
	return received.Sub(spent)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// monthWindow returns the [start, end) bounds of the calendar month
// `offset` months away from asOf (0 = current month, -1 = last month).
func monthWindow(asOf time.Time, offset int) (time.Time, time.Time) {
	year, month, _ := asOf.Date()
	start := time.Date(year, month+time.Month(offset), 1, 0, 0, 0, 0, asOf.Location())
	return start, start.AddDate(0, 1, 0)
}

// monthLabel formats a month as the chart axis shows it, e.g. "Jan/24".
func monthLabel(monthStart time.Time) string {
	return fmt.Sprintf("%s/%02d", monthLabels[monthStart.Month()-1], monthStart.Year()%100)
}
