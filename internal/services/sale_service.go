package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
	"gorm.io/gorm"
)

type SaleService struct {
	repo            repository.SaleRepository
	clientRepo      repository.ClientRepository
	dashboardRepo   repository.DashboardRepository
	scheduleSvc     *ScheduleService
	notificationSvc *NotificationService
	worker          *jobs.Worker
}

func NewSaleService(
	repo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	dashboardRepo repository.DashboardRepository,
	scheduleSvc *ScheduleService,
	notificationSvc *NotificationService,
	worker *jobs.Worker,
) *SaleService {
	return &SaleService{
		repo:            repo,
		clientRepo:      clientRepo,
		dashboardRepo:   dashboardRepo,
		scheduleSvc:     scheduleSvc,
		notificationSvc: notificationSvc,
		worker:          worker,
	}
}

func (s *SaleService) FindByID(ctx context.Context, id uint) (*models.Sale, error) {
	sale, err := s.repo.FindByIDWithDetails(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sale, err
}

func (s *SaleService) List(ctx context.Context, query *repository.ListQuery) ([]models.Sale, int64, error) {
	return s.repo.List(ctx, query)
}

// Create persists a sale together with its generated installment
// schedule. The schedule is computed up front and written in the same
// transaction as the sale, so either everything lands or nothing does.
func (s *SaleService) Create(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	client, err := s.clientRepo.FindByID(ctx, sale.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	installments, err := s.scheduleSvc.GenerateInstallments(sale)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWithInstallments(ctx, sale, installments); err != nil {
		return nil, err
	}

	s.invalidateDashboard()

	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.notificationSvc.NotifyAdmins(ctx,
			"Nova venda registrada",
			fmt.Sprintf("Venda de %s para %s em %d parcela(s)", sale.TotalValue.StringFixed(2), client.Name, sale.InstallmentCount),
			models.NotificationTypeSaleCreated)
	})

	return s.repo.FindByIDWithDetails(ctx, sale.ID)
}

func (s *SaleService) invalidateDashboard() {
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		if err := s.dashboardRepo.InvalidateCache(ctx, DashboardSummaryCacheKey); err != nil {
			logger.Error("failed to invalidate dashboard cache", "error", err)
			return err
		}
		return nil
	})
}
