package repository

import (
	"context"
	"time"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a new shift. A second OPEN shift violates idx_shifts_single_open
// and returns gorm.ErrDuplicatedKey.
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	return r.getByID(ctx, id, nil)
}

// GetByIDForUpdate retrieves a shift and locks the row until the transaction ends.
// Only meaningful inside Store.Transaction.
func (r *ShiftRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	return r.getByID(ctx, id, &clause.Locking{Strength: "UPDATE"})
}

// GetByIDForShare retrieves a shift with a shared lock so it cannot be closed
// while a log entry is being appended.
func (r *ShiftRepository) GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	return r.getByID(ctx, id, &clause.Locking{Strength: "SHARE"})
}

func (r *ShiftRepository) getByID(ctx context.Context, id uuid.UUID, lock *clause.Locking) (*models.Shift, error) {
	query := r.db.WithContext(ctx)
	if lock != nil {
		query = query.Clauses(*lock)
	}

	var shift models.Shift
	if err := query.First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetOpen retrieves the open shift, if any
func (r *ShiftRepository) GetOpen(ctx context.Context) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).First(&shift, "status = ?", models.ShiftStatusOpen).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetOpenByHolder retrieves the open shift held by a user
func (r *ShiftRepository) GetOpenByHolder(ctx context.Context, holderID uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).
		First(&shift, "status = ? AND incoming_holder_id = ?", models.ShiftStatusOpen, holderID).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetClosed retrieves closed shifts, most recent first
func (r *ShiftRepository) GetClosed(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ShiftStatusClosed).
		Order("end_time DESC").
		Find(&shifts).Error
	return shifts, err
}

// Close transitions an OPEN shift to CLOSED. It reports false when the shift
// was not OPEN anymore, which callers treat as a lost race.
func (r *ShiftRepository) Close(ctx context.Context, id uuid.UUID, closedBy uuid.UUID, endTime time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND status = ?", id, models.ShiftStatusOpen).
		Updates(map[string]interface{}{
			"status":             models.ShiftStatusClosed,
			"end_time":           endTime,
			"outgoing_holder_id": closedBy,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateGroup re-targets a shift to another scheduled group
func (r *ShiftRepository) UpdateGroup(ctx context.Context, id uuid.UUID, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", id).
		Update("scheduled_group_id", groupID).Error
}
