package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetAll retrieves all positions ordered by name
func (r *PositionRepository) GetAll(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.WithContext(ctx).Order("name").Find(&positions).Error
	return positions, err
}
