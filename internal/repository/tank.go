package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TankRepository handles database operations for tanks
type TankRepository struct {
	db *gorm.DB
}

// NewTankRepository creates a new tank repository
func NewTankRepository(db *gorm.DB) *TankRepository {
	return &TankRepository{db: db}
}

// Create creates a new tank
func (r *TankRepository) Create(ctx context.Context, tank *models.Tank) error {
	return r.db.WithContext(ctx).Create(tank).Error
}

// GetByID retrieves a tank by ID
func (r *TankRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tank, error) {
	var tank models.Tank
	err := r.db.WithContext(ctx).First(&tank, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tank, nil
}

// GetAll retrieves all tanks ordered by name
func (r *TankRepository) GetAll(ctx context.Context) ([]models.Tank, error) {
	var tanks []models.Tank
	err := r.db.WithContext(ctx).Order("name").Find(&tanks).Error
	return tanks, err
}

// Update persists all fields of a tank
func (r *TankRepository) Update(ctx context.Context, tank *models.Tank) error {
	return r.db.WithContext(ctx).Save(tank).Error
}

// Delete deletes a tank
func (r *TankRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Tank{}, "id = ?", id).Error
}
