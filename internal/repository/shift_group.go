package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftGroupRepository handles database operations for shift groups and their membership table
type ShiftGroupRepository struct {
	db *gorm.DB
}

// NewShiftGroupRepository creates a new shift group repository
func NewShiftGroupRepository(db *gorm.DB) *ShiftGroupRepository {
	return &ShiftGroupRepository{db: db}
}

// Create creates a new group
func (r *ShiftGroupRepository) Create(ctx context.Context, group *models.ShiftGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// GetByID retrieves a group by ID
func (r *ShiftGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ShiftGroup, error) {
	var group models.ShiftGroup
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all groups ordered by name
func (r *ShiftGroupRepository) GetAll(ctx context.Context) ([]models.ShiftGroup, error) {
	var groups []models.ShiftGroup
	err := r.db.WithContext(ctx).Order("name").Find(&groups).Error
	return groups, err
}

// Delete deletes a group. Memberships cascade; shifts referencing the group
// make the delete fail with gorm.ErrForeignKeyViolated.
func (r *ShiftGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ShiftGroup{}, "id = ?", id).Error
}

// AddMember inserts a membership row
func (r *ShiftGroupRepository) AddMember(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error {
	membership := &models.GroupMembership{GroupID: groupID, EmployeeID: employeeID}
	return r.db.WithContext(ctx).Omit("Group", "Employee").Create(membership).Error
}

// RemoveMember deletes a membership row and reports whether it existed
func (r *ShiftGroupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND employee_id = ?", groupID, employeeID).
		Delete(&models.GroupMembership{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetMembers returns the current members of a group
func (r *ShiftGroupRepository) GetMembers(ctx context.Context, groupID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN group_memberships ON group_memberships.employee_id = employees.id").
		Where("group_memberships.group_id = ?", groupID).
		Order("employees.full_name").
		Find(&employees).Error
	return employees, err
}
