package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduledTaskRepository handles database operations for scheduled tasks
type ScheduledTaskRepository struct {
	db *gorm.DB
}

// NewScheduledTaskRepository creates a new scheduled task repository
func NewScheduledTaskRepository(db *gorm.DB) *ScheduledTaskRepository {
	return &ScheduledTaskRepository{db: db}
}

// Create creates a new scheduled task. gorm writes the column default for a false
// IsActive, so an inactive scheduled task is switched off in a second statement.
func (r *ScheduledTaskRepository) Create(ctx context.Context, task *models.ScheduledTask) error {
	active := task.IsActive
	db := r.db.WithContext(ctx)
	if err := db.Create(task).Error; err != nil {
		return err
	}
	if active {
		return nil
	}
	task.IsActive = false
	return db.Model(task).Update("is_active", false).Error
}

// GetByID retrieves a scheduled task by ID
func (r *ScheduledTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduledTask, error) {
	var task models.ScheduledTask
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAll retrieves scheduled tasks, optionally only the active ones
func (r *ScheduledTaskRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.ScheduledTask, error) {
	var tasks []models.ScheduledTask
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("category, name").Find(&tasks).Error
	return tasks, err
}

// Update persists all fields of a scheduled task
func (r *ScheduledTaskRepository) Update(ctx context.Context, task *models.ScheduledTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}
