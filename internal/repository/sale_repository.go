package repository

import (
	"context"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"gorm.io/gorm"
)

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Sale, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Sale, error)
	FindByClient(ctx context.Context, clientID uint) ([]models.Sale, error)
	CreateWithInstallments(ctx context.Context, sale *models.Sale, installments []models.Installment) error
	List(ctx context.Context, query *ListQuery) ([]models.Sale, int64, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) FindByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).First(&sale, id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).
		Joins("Client").
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		First(&sale, id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) FindByClient(ctx context.Context, clientID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

// CreateWithInstallments persists a sale and its full installment schedule in
// one transaction, so a mid-batch write failure never leaves a partial schedule.
func (r *saleRepository) CreateWithInstallments(ctx context.Context, sale *models.Sale, installments []models.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range installments {
			installments[i].SaleID = sale.ID
		}
		if err := tx.Create(&installments).Error; err != nil {
			return err
		}
		sale.Installments = installments
		return nil
	})
}

func (r *saleRepository) List(ctx context.Context, query *ListQuery) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Sale{})

	if clientID := query.Filters["client_id"]; clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if query.Search != "" {
		db = db.Where("description ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Joins("Client").
		Order("sale_date DESC").
		Offset(query.Offset()).
		Limit(query.PerPage).
		Find(&sales).Error

	return sales, total, err
}
