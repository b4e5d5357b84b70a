package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates new equipment
func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

// GetByID retrieves equipment by ID
func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetAll retrieves all equipment ordered by name
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := r.db.WithContext(ctx).Order("name").Find(&equipment).Error
	return equipment, err
}

// Update persists all fields of equipment
func (r *EquipmentRepository) Update(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

// UpdateStatus overwrites the cached status with the latest status log entry
func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EquipmentStatus, reason string) error {
	return r.db.WithContext(ctx).
		Model(&models.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                status,
			"unavailability_reason": reason,
		}).Error
}

// Delete deletes equipment
func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Equipment{}, "id = ?", id).Error
}
