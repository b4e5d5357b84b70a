package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftLogRepository handles the append-only per-shift logs. It exposes no
// update or delete operations.
type ShiftLogRepository struct {
	db *gorm.DB
}

// NewShiftLogRepository creates a new shift log repository
func NewShiftLogRepository(db *gorm.DB) *ShiftLogRepository {
	return &ShiftLogRepository{db: db}
}

func (r *ShiftLogRepository) append(ctx context.Context, entry interface{}) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

// CreateEquipmentStatusLog appends an entry
func (r *ShiftLogRepository) CreateEquipmentStatusLog(ctx context.Context, entry *models.EquipmentStatusLog) error {
	return r.append(ctx, entry)
}

// CreateEventLog appends an entry
func (r *ShiftLogRepository) CreateEventLog(ctx context.Context, entry *models.EventLog) error {
	return r.append(ctx, entry)
}

// CreateTaskLog appends an entry
func (r *ShiftLogRepository) CreateTaskLog(ctx context.Context, entry *models.TaskLog) error {
	return r.append(ctx, entry)
}

// CreateNoveltyLog appends an entry
func (r *ShiftLogRepository) CreateNoveltyLog(ctx context.Context, entry *models.NoveltyLog) error {
	return r.append(ctx, entry)
}

// CreateGenerationRamp appends an entry
func (r *ShiftLogRepository) CreateGenerationRamp(ctx context.Context, entry *models.GenerationRamp) error {
	return r.append(ctx, entry)
}

// CreateTankReading appends an entry
func (r *ShiftLogRepository) CreateTankReading(ctx context.Context, entry *models.TankReading) error {
	return r.append(ctx, entry)
}

// CreateOperationalReading appends an entry
func (r *ShiftLogRepository) CreateOperationalReading(ctx context.Context, entry *models.OperationalReading) error {
	return r.append(ctx, entry)
}

// ListEquipmentStatusLogs returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListEquipmentStatusLogs(ctx context.Context, shiftID uuid.UUID) ([]models.EquipmentStatusLog, error) {
	var entries []models.EquipmentStatusLog
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("timestamp").Find(&entries).Error
	return entries, err
}

// ListEventLogs returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListEventLogs(ctx context.Context, shiftID uuid.UUID) ([]models.EventLog, error) {
	var entries []models.EventLog
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("timestamp").Find(&entries).Error
	return entries, err
}

// ListTaskLogs returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListTaskLogs(ctx context.Context, shiftID uuid.UUID) ([]models.TaskLog, error) {
	var entries []models.TaskLog
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("completion_time").Find(&entries).Error
	return entries, err
}

// ListNoveltyLogs returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListNoveltyLogs(ctx context.Context, shiftID uuid.UUID) ([]models.NoveltyLog, error) {
	var entries []models.NoveltyLog
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("timestamp").Find(&entries).Error
	return entries, err
}

// ListGenerationRamps returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListGenerationRamps(ctx context.Context, shiftID uuid.UUID) ([]models.GenerationRamp, error) {
	var entries []models.GenerationRamp
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("start_time").Find(&entries).Error
	return entries, err
}

// ListTankReadings returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListTankReadings(ctx context.Context, shiftID uuid.UUID) ([]models.TankReading, error) {
	var entries []models.TankReading
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("reading_timestamp").Find(&entries).Error
	return entries, err
}

// ListOperationalReadings returns the entries of a shift in chronological order
func (r *ShiftLogRepository) ListOperationalReadings(ctx context.Context, shiftID uuid.UUID) ([]models.OperationalReading, error) {
	var entries []models.OperationalReading
	err := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).Order("timestamp").Find(&entries).Error
	return entries, err
}
