package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonnelService handles positions, employees and shift groups
type PersonnelService struct {
	positions repository.PositionRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	groups    repository.ShiftGroupRepositoryInterface
	validator *validator.Validate
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(positions repository.PositionRepositoryInterface, employees repository.EmployeeRepositoryInterface, groups repository.ShiftGroupRepositoryInterface, validator *validator.Validate) *PersonnelService {
	return &PersonnelService{
		positions: positions,
		employees: employees,
		groups:    groups,
		validator: validator,
	}
}

// CreatePositionRequest represents the request to create a position
type CreatePositionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	FullName       string                `json:"full_name" validate:"required,max=200"`
	BadgeID        string                `json:"badge_id" validate:"required,max=40"`
	EmploymentType models.EmploymentType `json:"employment_type" validate:"omitempty,oneof=PERMANENT TEMPORARY"`
	BasePositionID *uuid.UUID            `json:"base_position_id,omitempty"`
}

// UpdateEmployeeRequest is a partial update of an employee. Nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	FullName       *string                `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	BadgeID        *string                `json:"badge_id,omitempty" validate:"omitempty,min=1,max=40"`
	EmploymentType *models.EmploymentType `json:"employment_type,omitempty" validate:"omitempty,oneof=PERMANENT TEMPORARY"`
	BasePositionID *uuid.UUID             `json:"base_position_id,omitempty"`
}

func (r *UpdateEmployeeRequest) apply(employee *models.Employee) {
	if r.FullName != nil {
		employee.FullName = *r.FullName
	}
	if r.BadgeID != nil {
		employee.BadgeID = *r.BadgeID
	}
	if r.EmploymentType != nil {
		employee.EmploymentType = *r.EmploymentType
	}
	if r.BasePositionID != nil {
		employee.BasePositionID = r.BasePositionID
	}
}

// CreateGroupRequest represents the request to create a shift group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// GroupResponse represents a shift group
type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupWithMembersResponse represents a shift group with its members
type GroupWithMembersResponse struct {
	GroupResponse
	Members []models.Employee `json:"members"`
}

// CreatePosition creates a new position
func (s *PersonnelService) CreatePosition(ctx context.Context, req *CreatePositionRequest) (*models.Position, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	position := &models.Position{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.positions.Create(ctx, position); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPositionExists
		}
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return position, nil
}

// ListPositions retrieves all positions
func (s *PersonnelService) ListPositions(ctx context.Context) ([]models.Position, error) {
	positions, err := s.positions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

// CreateEmployee creates a new employee
func (s *PersonnelService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if req.BasePositionID != nil {
		if _, err := s.positions.GetByID(ctx, *req.BasePositionID); err != nil {
			return nil, lookupError(err, apperrors.ErrPositionNotFound, "position")
		}
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentTypePermanent
	}

	employee := &models.Employee{
		FullName:       req.FullName,
		BadgeID:        req.BadgeID,
		EmploymentType: employmentType,
		BasePositionID: req.BasePositionID,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// ListEmployees retrieves all employees
func (s *PersonnelService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *PersonnelService) UpdateEmployee(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrEmployeeNotFound, "employee")
	}

	if req.BasePositionID != nil {
		if _, err := s.positions.GetByID(ctx, *req.BasePositionID); err != nil {
			return nil, lookupError(err, apperrors.ErrPositionNotFound, "position")
		}
	}

	req.apply(employee)
	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// CreateGroup creates a new shift group
func (s *PersonnelService) CreateGroup(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	group := &models.ShiftGroup{Name: req.Name}
	if err := s.groups.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrGroupExists
		}
		return nil, fmt.Errorf("failed to create shift group: %w", err)
	}
	return toGroupResponse(group), nil
}

// ListGroups retrieves all shift groups
func (s *PersonnelService) ListGroups(ctx context.Context) ([]GroupResponse, error) {
	groups, err := s.groups.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i])
	}
	return responses, nil
}

// GetGroup retrieves a shift group with its members
func (s *PersonnelService) GetGroup(ctx context.Context, id uuid.UUID) (*GroupWithMembersResponse, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGroupNotFound, "shift group")
	}

	members, err := s.groups.GetMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	return &GroupWithMembersResponse{
		GroupResponse: *toGroupResponse(group),
		Members:       members,
	}, nil
}

// DeleteGroup deletes a shift group that no shift references
func (s *PersonnelService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if _, err := s.groups.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrGroupNotFound, "shift group")
	}

	if err := s.groups.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrGroupInUse
		}
		return fmt.Errorf("failed to delete shift group: %w", err)
	}
	return nil
}

// AddEmployeeToGroup adds an employee to a shift group
func (s *PersonnelService) AddEmployeeToGroup(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return lookupError(err, apperrors.ErrGroupNotFound, "shift group")
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return lookupError(err, apperrors.ErrEmployeeNotFound, "employee")
	}

	if err := s.groups.AddMember(ctx, groupID, employeeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrMembershipExists
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":    groupID,
		"employee_id": employeeID,
	}).Info("Employee added to shift group")
	return nil
}

// RemoveEmployeeFromGroup removes an employee from a shift group
func (s *PersonnelService) RemoveEmployeeFromGroup(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return lookupError(err, apperrors.ErrGroupNotFound, "shift group")
	}

	removed, err := s.groups.RemoveMember(ctx, groupID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	if !removed {
		return apperrors.ErrMembershipNotFound
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":    groupID,
		"employee_id": employeeID,
	}).Info("Employee removed from shift group")
	return nil
}

func toGroupResponse(group *models.ShiftGroup) *GroupResponse {
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}
