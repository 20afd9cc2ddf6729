package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DashboardRepository caches computed dashboard payloads so repeated
// summary requests do not re-scan installments and expenses.
type DashboardRepository interface {
	GetCache(ctx context.Context, key string) (json.RawMessage, bool, error)
	SetCache(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error
	InvalidateCache(ctx context.Context, keys ...string) error
	CleanExpiredCache(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetCache(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var entry models.DashboardCache
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, time.Now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Data, true, nil
}

func (r *dashboardRepository) SetCache(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	entry := models.DashboardCache{
		CacheKey:  key,
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *dashboardRepository) InvalidateCache(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("cache_key IN ?", keys).
		Delete(&models.DashboardCache{}).Error
}

func (r *dashboardRepository) CleanExpiredCache(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.DashboardCache{})
	return res.RowsAffected, res.Error
}
