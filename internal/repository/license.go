package repository

import (
	"context"
	"time"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LicenseRepository handles database operations for licenses
type LicenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new license repository
func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

// Create creates a new license
func (r *LicenseRepository) Create(ctx context.Context, license *models.License) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(license).Error
}

// GetByID retrieves a license by ID
func (r *LicenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.License, error) {
	var license models.License
	err := r.db.WithContext(ctx).First(&license, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &license, nil
}

// GetAll retrieves all licenses, newest first
func (r *LicenseRepository) GetAll(ctx context.Context) ([]models.License, error) {
	var licenses []models.License
	err := r.db.WithContext(ctx).Order("start_time DESC").Find(&licenses).Error
	return licenses, err
}

// GetByStatus retrieves licenses in the given status, newest first
func (r *LicenseRepository) GetByStatus(ctx context.Context, status models.LicenseStatus) ([]models.License, error) {
	var licenses []models.License
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("start_time DESC").Find(&licenses).Error
	return licenses, err
}

// Close transitions an ACTIVE license to CLOSED and reports whether it was ACTIVE
func (r *LicenseRepository) Close(ctx context.Context, id uuid.UUID, closedBy uuid.UUID, endTime time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.License{}).
		Where("id = ? AND status = ?", id, models.LicenseStatusActive).
		Updates(map[string]interface{}{
			"status":            models.LicenseStatusClosed,
			"end_time":          endTime,
			"closed_by_user_id": closedBy,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
