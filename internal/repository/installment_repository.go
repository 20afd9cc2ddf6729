package repository

import (
	"context"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"gorm.io/gorm"
)

// InstallmentRepository defines the interface for installment data access
type InstallmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Installment, error)
	FindBySale(ctx context.Context, saleID uint) ([]models.Installment, error)
	FindPending(ctx context.Context) ([]models.Installment, error)
	FindOverdue(ctx context.Context, asOf time.Time) ([]models.Installment, error)
	FindPaidBetween(ctx context.Context, start, end time.Time) ([]models.Installment, error)
	Update(ctx context.Context, installment *models.Installment) error
}

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepository {
	return &installmentRepository{db: db}
}

func (r *installmentRepository) FindByID(ctx context.Context, id uint) (*models.Installment, error) {
	var installment models.Installment
	err := r.db.WithContext(ctx).
		Joins("Sale").
		Joins("Sale.Client").
		First(&installment, id).Error
	if err != nil {
		return nil, err
	}
	return &installment, nil
}

func (r *installmentRepository) FindBySale(ctx context.Context, saleID uint) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("number ASC").
		Find(&installments).Error
	return installments, err
}

// FindPending returns all pending installments ordered by due date, with the
// owning sale and its client loaded for the receivables listing.
func (r *installmentRepository) FindPending(ctx context.Context) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Joins("Sale").
		Joins("Sale.Client").
		Where("installments.status = ?", models.InstallmentStatusPending).
		Order("installments.due_date ASC").
		Find(&installments).Error
	return installments, err
}

func (r *installmentRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Joins("Sale").
		Joins("Sale.Client").
		Where("installments.status = ?", models.InstallmentStatusPending).
		Where("installments.due_date < ?", asOf).
		Order("installments.due_date ASC").
		Find(&installments).Error
	return installments, err
}

func (r *installmentRepository) FindPaidBetween(ctx context.Context, start, end time.Time) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Where("status = ?", models.InstallmentStatusPaid).
		Where("paid_date >= ? AND paid_date <= ?", start, end).
		Find(&installments).Error
	return installments, err
}

func (r *installmentRepository) Update(ctx context.Context, installment *models.Installment) error {
	return r.db.WithContext(ctx).Save(installment).Error
}
