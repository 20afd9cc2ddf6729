package services

import (
	"testing"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestEmailService_checkEmailPreconditions(t *testing.T) {
	logger.Setup("test")

	// Email notifications disabled: skip silently
	cfg := &config.Config{
		EnableEmailNotifications: false,
	}
	service := NewEmailService(cfg)
	user := &models.User{Email: "test@example.com", FullName: "Test User", ID: 1}

	ok, err := service.checkEmailPreconditions(user, "test operation")
	assert.False(t, ok, "Should return false when notifications are disabled")
	assert.Nil(t, err, "Should not return error when notifications are disabled")

	// Properly configured
	cfg = &config.Config{
		EnableEmailNotifications: true,
		ResendAPIKey:             "test_key",
		FromEmail:                "from@example.com",
	}
	service = NewEmailService(cfg)

	ok, err = service.checkEmailPreconditions(user, "test operation")
	assert.True(t, ok, "Should return true when properly configured")
	assert.Nil(t, err, "Should not return error when properly configured")

	// Missing API key
	cfg = &config.Config{
		EnableEmailNotifications: true,
		ResendAPIKey:             "",
		FromEmail:                "from@example.com",
	}
	service = NewEmailService(cfg)

	ok, err = service.checkEmailPreconditions(user, "test operation")
	assert.False(t, ok, "Should return false when config is missing")
	assert.Error(t, err, "Should return error when config is missing")
	assert.Contains(t, err.Error(), "RESEND_API_KEY is not set")

	// Empty recipient
	cfg = &config.Config{
		EnableEmailNotifications: true,
		ResendAPIKey:             "test_key",
		FromEmail:                "from@example.com",
	}
	service = NewEmailService(cfg)
	userInvalid := &models.User{Email: "", FullName: "Invalid User", ID: 2}

	ok, err = service.checkEmailPreconditions(userInvalid, "test operation")
	assert.False(t, ok, "Should return false when email is invalid")
	assert.Error(t, err, "Should return error when email is invalid")
	assert.Equal(t, "email address is empty", err.Error())
}

func TestEmailService_RenderOverdueReminder(t *testing.T) {
	logger.Setup("test")

	service := NewEmailService(&config.Config{})

	data := struct {
		Name         string
		Installments []OverdueInstallmentData
	}{
		Name: "Maria",
		Installments: []OverdueInstallmentData{
			{ClientName: "João Silva", Description: "Sofá 3 lugares", Amount: "R$ 250.00", DueDate: "15/05/2024"},
		},
	}

	body, err := service.renderTemplate("overdue_reminder.html", data)
	assert.NoError(t, err)
	assert.Contains(t, body, "Maria")
	assert.Contains(t, body, "João Silva")
	assert.Contains(t, body, "R$ 250.00")
	assert.Contains(t, body, "15/05/2024")
}
