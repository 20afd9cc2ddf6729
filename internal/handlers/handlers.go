package handlers

import (
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Client       *ClientHandler
	Sale         *SaleHandler
	Installment  *InstallmentHandler
	Expense      *ExpenseHandler
	Dashboard    *DashboardHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(svcs.Auth),
		Client:       NewClientHandler(svcs.Client, svcs.Report),
		Sale:         NewSaleHandler(svcs.Sale),
		Installment:  NewInstallmentHandler(svcs.Installment),
		Expense:      NewExpenseHandler(svcs.Expense),
		Dashboard:    NewDashboardHandler(svcs.Dashboard, svcs.Export),
		Notification: NewNotificationHandler(svcs.Notification),
		Report:       NewReportHandler(svcs.Report),
		Job:          NewJobHandler(svcs.Job),
	}
}
