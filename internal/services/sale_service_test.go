package services

import (
	"context"
	"testing"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockSaleRepo struct {
	repository.SaleRepository
	mockFindByIDWithDetails    func(ctx context.Context, id uint) (*models.Sale, error)
	mockCreateWithInstallments func(ctx context.Context, sale *models.Sale, installments []models.Installment) error
}

func (m *mockSaleRepo) FindByIDWithDetails(ctx context.Context, id uint) (*models.Sale, error) {
	return m.mockFindByIDWithDetails(ctx, id)
}

func (m *mockSaleRepo) CreateWithInstallments(ctx context.Context, sale *models.Sale, installments []models.Installment) error {
	return m.mockCreateWithInstallments(ctx, sale, installments)
}

type mockClientRepo struct {
	repository.ClientRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Client, error)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	return m.mockFindByID(ctx, id)
}

func newTestSaleService(saleRepo *mockSaleRepo, clientRepo *mockClientRepo) (*SaleService, *jobs.Worker) {
	logger.Setup("test")
	worker := jobs.NewWorker(1)
	notificationSvc := NewNotificationService(&mockNotificationRepo{}, &mockUserRepo{})
	svc := NewSaleService(saleRepo, clientRepo, &mockDashboardRepo{}, NewScheduleService(), notificationSvc, worker)
	return svc, worker
}

func TestSaleService_Create(t *testing.T) {
	var persisted []models.Installment

	saleRepo := &mockSaleRepo{
		mockCreateWithInstallments: func(ctx context.Context, sale *models.Sale, installments []models.Installment) error {
			sale.ID = 1
			persisted = installments
			return nil
		},
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Sale, error) {
			return &models.Sale{ID: id}, nil
		},
	}
	clientRepo := &mockClientRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Client, error) {
			return &models.Client{ID: id, Name: "João Silva"}, nil
		},
	}

	svc, worker := newTestSaleService(saleRepo, clientRepo)
	defer worker.Shutdown()

	sale := &models.Sale{
		ClientID:         5,
		Description:      "Guarda-roupa",
		TotalValue:       dec("100.00"),
		InstallmentCount: 3,
		SaleDate:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	result, err := svc.Create(context.Background(), sale)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Len(t, persisted, 3)

	sum := dec("0")
	for _, inst := range persisted {
		sum = sum.Add(inst.Value)
	}
	assert.True(t, sum.Equal(dec("100.00")))
}

func TestSaleService_Create_UnknownClient(t *testing.T) {
	saleRepo := &mockSaleRepo{}
	clientRepo := &mockClientRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc, worker := newTestSaleService(saleRepo, clientRepo)
	defer worker.Shutdown()

	sale := &models.Sale{
		ClientID:         99,
		TotalValue:       dec("100.00"),
		InstallmentCount: 2,
		SaleDate:         time.Now(),
	}

	result, err := svc.Create(context.Background(), sale)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaleService_Create_InvalidSale(t *testing.T) {
	created := false
	saleRepo := &mockSaleRepo{
		mockCreateWithInstallments: func(ctx context.Context, sale *models.Sale, installments []models.Installment) error {
			created = true
			return nil
		},
	}
	clientRepo := &mockClientRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Client, error) {
			return &models.Client{ID: id}, nil
		},
	}

	svc, worker := newTestSaleService(saleRepo, clientRepo)
	defer worker.Shutdown()

	sale := &models.Sale{
		ClientID:         1,
		TotalValue:       dec("0.00"),
		InstallmentCount: 3,
		SaleDate:         time.Now(),
	}

	result, err := svc.Create(context.Background(), sale)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidSale)
	assert.False(t, created, "nothing should be persisted for an invalid sale")
}
