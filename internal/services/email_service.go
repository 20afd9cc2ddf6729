package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

// checkEmailPreconditions decides whether an email can go out. A false
// with nil error means sending is simply disabled; a false with an
// error means it should have gone out but cannot.
func (s *EmailService) checkEmailPreconditions(user *models.User, operation string) (bool, error) {
	if !s.config.EnableEmailNotifications {
		logger.Debug(fmt.Sprintf("Email notifications disabled, skipping %s", operation))
		return false, nil
	}
	if s.config.ResendAPIKey == "" {
		return false, errors.New("RESEND_API_KEY is not set")
	}
	if user.Email == "" {
		return false, errors.New("email address is empty")
	}
	return true, nil
}

// OverdueInstallmentData is a row in the overdue reminder email
type OverdueInstallmentData struct {
	ClientName  string
	Description string
	Amount      string
	DueDate     string
}

// SendOverdueInstallments emails the owner a digest of installments
// past their due date. Installments must come with Sale and Sale.Client
// preloaded.
func (s *EmailService) SendOverdueInstallments(ctx context.Context, user *models.User, installments []models.Installment) error {
	ok, err := s.checkEmailPreconditions(user, "overdue installments digest")
	if !ok {
		return err
	}

	var rows []OverdueInstallmentData
	for _, inst := range installments {
		rows = append(rows, OverdueInstallmentData{
			ClientName:  inst.Sale.Client.Name,
			Description: inst.Sale.Description,
			Amount:      fmt.Sprintf("R$ %s", inst.Value.StringFixed(2)),
			DueDate:     inst.DueDate.Format("02/01/2006"),
		})
	}

	data := struct {
		Name         string
		Installments []OverdueInstallmentData
	}{
		Name:         user.FullName,
		Installments: rows,
	}

	body, err := s.renderTemplate("overdue_reminder.html", data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Parcelas vencidas (%d)", len(installments)),
		Html:    body,
	}
	_, err = s.resendClient.Emails.Send(params)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", user.Email, err))
		return err
	}

	logger.Info(fmt.Sprintf("📧 [Email Sent] To: %s | Subject: Parcelas vencidas (%d)", user.Email, len(installments)))
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
