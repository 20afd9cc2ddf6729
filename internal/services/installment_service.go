package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/statemachine"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InstallmentService struct {
	repo            repository.InstallmentRepository
	userRepo        repository.UserRepository
	dashboardRepo   repository.DashboardRepository
	notificationSvc *NotificationService
	emailSvc        *EmailService
	worker          *jobs.Worker
}

func NewInstallmentService(
	repo repository.InstallmentRepository,
	userRepo repository.UserRepository,
	dashboardRepo repository.DashboardRepository,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	worker *jobs.Worker,
) *InstallmentService {
	return &InstallmentService{
		repo:            repo,
		userRepo:        userRepo,
		dashboardRepo:   dashboardRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		worker:          worker,
	}
}

func (s *InstallmentService) FindByID(ctx context.Context, id uint) (*models.Installment, error) {
	installment, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return installment, err
}

// FindPending lists open installments ordered by due date, the
// collection worklist the receivables screen is built from.
func (s *InstallmentService) FindPending(ctx context.Context) ([]models.Installment, error) {
	return s.repo.FindPending(ctx)
}

func (s *InstallmentService) FindBySale(ctx context.Context, saleID uint) ([]models.Installment, error) {
	return s.repo.FindBySale(ctx, saleID)
}

// Pay marks an installment as received, stamping the payment date and
// issuing a receipt number.
func (s *InstallmentService) Pay(ctx context.Context, id uint) (*models.Installment, error) {
	installment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ifsm := statemachine.NewInstallmentFSM(installment)
	if err := ifsm.Pay(ctx, time.Now()); err != nil {
		return nil, ErrInvalidState
	}

	receipt := generateReceiptNumber()
	installment.ReceiptNumber = &receipt

	if err := s.repo.Update(ctx, installment); err != nil {
		return nil, err
	}

	s.invalidateDashboard()

	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.notificationSvc.NotifyAdmins(ctx,
			"Parcela recebida",
			fmt.Sprintf("Parcela %d da venda #%d recebida (%s)", installment.Number, installment.SaleID, installment.Value.StringFixed(2)),
			models.NotificationTypeInstallmentPaid)
	})

	return installment, nil
}

// Undo reverts a payment registered by mistake, returning the
// installment to pending and discarding its receipt.
func (s *InstallmentService) Undo(ctx context.Context, id uint) (*models.Installment, error) {
	installment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ifsm := statemachine.NewInstallmentFSM(installment)
	if err := ifsm.Undo(ctx); err != nil {
		return nil, ErrInvalidState
	}

	if err := s.repo.Update(ctx, installment); err != nil {
		return nil, err
	}

	s.invalidateDashboard()
	return installment, nil
}

// Edit adjusts the value or due date of a pending installment. Paid
// installments are immutable until reverted.
func (s *InstallmentService) Edit(ctx context.Context, id uint, value *decimal.Decimal, dueDate *time.Time) (*models.Installment, error) {
	installment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !installment.MayEdit() {
		return nil, ErrInvalidState
	}

	if value != nil {
		if value.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidValue
		}
		installment.Value = *value
	}
	if dueDate != nil {
		installment.DueDate = *dueDate
	}

	if err := s.repo.Update(ctx, installment); err != nil {
		return nil, err
	}

	s.invalidateDashboard()
	return installment, nil
}

// FindOverdue lists pending installments whose due date has passed.
// Comparison is at day granularity: an installment due on asOf's day
// is not overdue yet.
func (s *InstallmentService) FindOverdue(ctx context.Context, asOf time.Time) ([]models.Installment, error) {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	return s.repo.FindOverdue(ctx, day)
}

// CheckOverdue is the scheduled collection sweep: it notifies admins
// in-app and queues the email digest when anything is past due.
func (s *InstallmentService) CheckOverdue(ctx context.Context) error {
	overdue, err := s.FindOverdue(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		return nil
	}

	if err := s.notificationSvc.NotifyAdmins(ctx,
		"Parcelas vencidas",
		fmt.Sprintf("%d parcela(s) vencida(s) aguardando recebimento", len(overdue)),
		models.NotificationTypeInstallmentOverdue); err != nil {
		return err
	}

	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		admin := admin
		s.worker.Enqueue(func(ctx context.Context) error {
			return s.emailSvc.SendOverdueInstallments(ctx, &admin, overdue)
		})
	}

	return nil
}

func (s *InstallmentService) invalidateDashboard() {
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.dashboardRepo.InvalidateCache(ctx, DashboardSummaryCacheKey)
	})
}

func generateReceiptNumber() string {
	return fmt.Sprintf("REC-%s", strings.ToUpper(uuid.NewString()[:8]))
}
