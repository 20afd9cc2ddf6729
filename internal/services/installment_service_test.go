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
)

type mockNotificationRepo struct {
	repository.NotificationRepository
	mockCreate func(ctx context.Context, notification *models.Notification) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, notification)
	}
	return nil
}

func newTestInstallmentService(instRepo *mockInstallmentRepo, userRepo *mockUserRepo, notifRepo *mockNotificationRepo) (*InstallmentService, *jobs.Worker) {
	logger.Setup("test")
	worker := jobs.NewWorker(1)
	notificationSvc := NewNotificationService(notifRepo, userRepo)
	svc := NewInstallmentService(instRepo, userRepo, &mockDashboardRepo{}, notificationSvc, nil, worker)
	return svc, worker
}

func TestInstallmentService_Pay(t *testing.T) {
	stored := &models.Installment{
		ID:     10,
		SaleID: 3,
		Number: 2,
		Value:  dec("50.00"),
		Status: models.InstallmentStatusPending,
	}

	var updated *models.Installment
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			assert.Equal(t, uint(10), id)
			return stored, nil
		},
		mockUpdate: func(ctx context.Context, installment *models.Installment) error {
			updated = installment
			return nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	result, err := svc.Pay(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, models.InstallmentStatusPaid, result.Status)
	assert.NotNil(t, result.PaidDate)
	if assert.NotNil(t, result.ReceiptNumber) {
		assert.Regexp(t, `^REC-[0-9A-F]{8}$`, *result.ReceiptNumber)
	}
	assert.NotNil(t, updated)
}

func TestInstallmentService_Pay_AlreadyPaid(t *testing.T) {
	now := time.Now()
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{ID: id, Status: models.InstallmentStatusPaid, PaidDate: &now}, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	result, err := svc.Pay(context.Background(), 1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInstallmentService_Undo(t *testing.T) {
	now := time.Now()
	receipt := "REC-ABCD1234"
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{
				ID:            id,
				Status:        models.InstallmentStatusPaid,
				PaidDate:      &now,
				ReceiptNumber: &receipt,
			}, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	result, err := svc.Undo(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.InstallmentStatusPending, result.Status)
	assert.Nil(t, result.PaidDate)
	assert.Nil(t, result.ReceiptNumber)
}

func TestInstallmentService_Edit_PendingOnly(t *testing.T) {
	now := time.Now()
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{ID: id, Status: models.InstallmentStatusPaid, PaidDate: &now}, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	newValue := dec("99.00")
	result, err := svc.Edit(context.Background(), 1, &newValue, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInstallmentService_Edit(t *testing.T) {
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{
				ID:      id,
				Status:  models.InstallmentStatusPending,
				Value:   dec("50.00"),
				DueDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	newValue := dec("75.50")
	newDue := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.Edit(context.Background(), 1, &newValue, &newDue)
	assert.NoError(t, err)
	assert.True(t, result.Value.Equal(newValue))
	assert.Equal(t, newDue, result.DueDate)
}

func TestInstallmentService_Edit_RejectsNonPositiveValue(t *testing.T) {
	instRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{ID: id, Status: models.InstallmentStatusPending, Value: dec("50.00")}, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	zero := dec("0.00")
	result, err := svc.Edit(context.Background(), 1, &zero, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInstallmentService_CheckOverdue_NoneFound(t *testing.T) {
	instRepo := &mockInstallmentRepo{
		mockFindOverdue: func(ctx context.Context, asOf time.Time) ([]models.Installment, error) {
			return nil, nil
		},
	}
	userRepo := &mockUserRepo{}

	created := 0
	notifRepo := &mockNotificationRepo{
		mockCreate: func(ctx context.Context, n *models.Notification) error {
			created++
			return nil
		},
	}

	svc, worker := newTestInstallmentService(instRepo, userRepo, notifRepo)
	defer worker.Shutdown()

	err := svc.CheckOverdue(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, created, "no notifications when nothing is overdue")
}

func TestInstallmentService_FindOverdue_DayGranularity(t *testing.T) {
	var capturedAsOf time.Time
	instRepo := &mockInstallmentRepo{
		mockFindOverdue: func(ctx context.Context, asOf time.Time) ([]models.Installment, error) {
			capturedAsOf = asOf
			return nil, nil
		},
	}
	userRepo := &mockUserRepo{}

	svc, worker := newTestInstallmentService(instRepo, userRepo, &mockNotificationRepo{})
	defer worker.Shutdown()

	// An installment due today keeps its whole due day, so the store is
	// queried with the start of asOf's day rather than the instant.
	asOf := time.Date(2024, time.June, 15, 14, 30, 45, 0, time.UTC)
	_, err := svc.FindOverdue(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), capturedAsOf)
}
