package services

import (
	"context"
	"errors"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService struct {
	repo          repository.ExpenseRepository
	dashboardRepo repository.DashboardRepository
	worker        *jobs.Worker
}

func NewExpenseService(repo repository.ExpenseRepository, dashboardRepo repository.DashboardRepository, worker *jobs.Worker) *ExpenseService {
	return &ExpenseService{repo: repo, dashboardRepo: dashboardRepo, worker: worker}
}

func (s *ExpenseService) FindByID(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return expense, err
}

func (s *ExpenseService) List(ctx context.Context, query *repository.ListQuery) ([]models.Expense, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	if expense.Value.LessThanOrEqual(decimal.Zero) || expense.Description == "" {
		return ErrInvalidExpense
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return err
	}

	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.dashboardRepo.InvalidateCache(ctx, DashboardSummaryCacheKey)
	})
	return nil
}

func (s *ExpenseService) Update(ctx context.Context, id uint, updates *models.Expense) (*models.Expense, error) {
	expense, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates.Value.LessThanOrEqual(decimal.Zero) || updates.Description == "" {
		return nil, ErrInvalidExpense
	}

	expense.Description = updates.Description
	expense.Value = updates.Value
	expense.ExpenseDate = updates.ExpenseDate
	expense.Category = updates.Category

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.dashboardRepo.InvalidateCache(ctx, DashboardSummaryCacheKey)
	})
	return expense, nil
}
