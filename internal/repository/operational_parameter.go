package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperationalParameterRepository handles database operations for operational parameters
type OperationalParameterRepository struct {
	db *gorm.DB
}

// NewOperationalParameterRepository creates a new operational parameter repository
func NewOperationalParameterRepository(db *gorm.DB) *OperationalParameterRepository {
	return &OperationalParameterRepository{db: db}
}

// Create creates a new operational parameter. gorm writes the column default for a false
// IsActive, so an inactive operational parameter is switched off in a second statement.
func (r *OperationalParameterRepository) Create(ctx context.Context, parameter *models.OperationalParameter) error {
	active := parameter.IsActive
	db := r.db.WithContext(ctx)
	if err := db.Create(parameter).Error; err != nil {
		return err
	}
	if active {
		return nil
	}
	parameter.IsActive = false
	return db.Model(parameter).Update("is_active", false).Error
}

// GetByID retrieves an operational parameter by ID
func (r *OperationalParameterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OperationalParameter, error) {
	var parameter models.OperationalParameter
	err := r.db.WithContext(ctx).First(&parameter, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &parameter, nil
}

// GetAll retrieves operational parameters, optionally only the active ones
func (r *OperationalParameterRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.OperationalParameter, error) {
	var parameters []models.OperationalParameter
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name").Find(&parameters).Error
	return parameters, err
}

// Update persists all fields of an operational parameter
func (r *OperationalParameterRepository) Update(ctx context.Context, parameter *models.OperationalParameter) error {
	return r.db.WithContext(ctx).Save(parameter).Error
}
