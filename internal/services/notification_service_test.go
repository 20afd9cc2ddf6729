package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
)

func TestNotifyAdmins_FanOut(t *testing.T) {
	userRepo := &mockUserRepo{
		mockFindAdmins: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1}, {ID: 2}}, nil
		},
	}

	var notified []uint
	notifRepo := &mockNotificationRepo{
		mockCreate: func(ctx context.Context, n *models.Notification) error {
			notified = append(notified, n.UserID)
			return nil
		},
	}

	svc := NewNotificationService(notifRepo, userRepo)
	err := svc.NotifyAdmins(context.Background(), "Nova venda registrada", "msg", models.NotificationTypeSaleCreated)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, notified)
}

func TestNotifyAdmins_ContinuesPastFailedCreate(t *testing.T) {
	logger.Setup("test")

	userRepo := &mockUserRepo{
		mockFindAdmins: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}

	var notified []uint
	notifRepo := &mockNotificationRepo{
		mockCreate: func(ctx context.Context, n *models.Notification) error {
			if n.UserID == 2 {
				return errors.New("insert failed")
			}
			notified = append(notified, n.UserID)
			return nil
		},
	}

	svc := NewNotificationService(notifRepo, userRepo)
	err := svc.NotifyAdmins(context.Background(), "Parcelas vencidas", "msg", models.NotificationTypeInstallmentOverdue)
	assert.NoError(t, err, "one failed insert must not abort the fan-out")
	assert.Equal(t, []uint{1, 3}, notified)
}
