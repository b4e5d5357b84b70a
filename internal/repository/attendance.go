package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for shift attendance sheets
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// CreateBatch inserts a whole attendance sheet
func (r *AttendanceRepository) CreateBatch(ctx context.Context, records []models.ShiftAttendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&records).Error
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ShiftAttendance, error) {
	var record models.ShiftAttendance
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByShiftID retrieves the attendance sheet of a shift
func (r *AttendanceRepository) GetByShiftID(ctx context.Context, shiftID uuid.UUID) ([]models.ShiftAttendance, error) {
	var records []models.ShiftAttendance
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at").
		Find(&records).Error
	return records, err
}

// Update persists all fields of an attendance record
func (r *AttendanceRepository) Update(ctx context.Context, record *models.ShiftAttendance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
}

// DeleteByShiftID removes the attendance sheet of a shift
func (r *AttendanceRepository) DeleteByShiftID(ctx context.Context, shiftID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Delete(&models.ShiftAttendance{}).Error
}
