package services

import (
	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	Client       *ClientService
	Sale         *SaleService
	Schedule     *ScheduleService
	Installment  *InstallmentService
	Expense      *ExpenseService
	Dashboard    *DashboardService
	Notification *NotificationService
	Email        *EmailService
	Export       *ExportService
	Report       *ReportService
	Job          *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, cfg *config.Config) *Services {
	notificationSvc := NewNotificationService(repos.Notification, repos.User)
	emailSvc := NewEmailService(cfg)
	scheduleSvc := NewScheduleService()
	dashboardSvc := NewDashboardService(repos.Installment, repos.Expense, repos.Dashboard)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, cfg),
		Client:       NewClientService(repos.Client, repos.Sale),
		Sale:         NewSaleService(repos.Sale, repos.Client, repos.Dashboard, scheduleSvc, notificationSvc, worker),
		Schedule:     scheduleSvc,
		Installment:  NewInstallmentService(repos.Installment, repos.User, repos.Dashboard, notificationSvc, emailSvc, worker),
		Expense:      NewExpenseService(repos.Expense, repos.Dashboard, worker),
		Dashboard:    dashboardSvc,
		Notification: notificationSvc,
		Email:        emailSvc,
		Export:       NewExportService(dashboardSvc),
		Report:       NewReportService(repos.Client, repos.Sale, repos.Installment),
		Job:          NewJobService(worker),
	}
}
