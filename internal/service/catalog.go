package service

import (
	"context"
	"errors"
	"fmt"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages the plant catalogs referenced by shift logs:
// equipment, tanks, scheduled tasks and operational parameters
type CatalogService struct {
	equipment  repository.EquipmentRepositoryInterface
	tanks      repository.TankRepositoryInterface
	tasks      repository.ScheduledTaskRepositoryInterface
	parameters repository.OperationalParameterRepositoryInterface
	validator  *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	equipment repository.EquipmentRepositoryInterface,
	tanks repository.TankRepositoryInterface,
	tasks repository.ScheduledTaskRepositoryInterface,
	parameters repository.OperationalParameterRepositoryInterface,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		equipment:  equipment,
		tanks:      tanks,
		tasks:      tasks,
		parameters: parameters,
		validator:  validator,
	}
}

// CreateEquipmentRequest represents the request to register equipment
type CreateEquipmentRequest struct {
	Name     string                 `json:"name" validate:"required,max=100"`
	Location string                 `json:"location" validate:"max=200"`
	Status   models.EquipmentStatus `json:"status" validate:"omitempty,enum"`
}

// UpdateEquipmentRequest is a partial update of equipment
type UpdateEquipmentRequest struct {
	Name                 *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Location             *string                 `json:"location,omitempty" validate:"omitempty,max=200"`
	Status               *models.EquipmentStatus `json:"status,omitempty" validate:"omitempty,enum"`
	UnavailabilityReason *string                 `json:"unavailability_reason,omitempty"`
}

func (r *UpdateEquipmentRequest) apply(equipment *models.Equipment) {
	if r.Name != nil {
		equipment.Name = *r.Name
	}
	if r.Location != nil {
		equipment.Location = *r.Location
	}
	if r.Status != nil {
		equipment.Status = *r.Status
	}
	if r.UnavailabilityReason != nil {
		equipment.UnavailabilityReason = *r.UnavailabilityReason
	}
}

// CreateTankRequest represents the request to register a tank
type CreateTankRequest struct {
	Name           string              `json:"name" validate:"required,max=100"`
	ResourceType   models.ResourceType `json:"resource_type" validate:"required,oneof=FUEL POTABLE_WATER DEMINERALIZED_WATER"`
	CapacityLiters float64             `json:"capacity_liters" validate:"gt=0"`
}

// UpdateTankRequest is a partial update of a tank
type UpdateTankRequest struct {
	Name           *string              `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ResourceType   *models.ResourceType `json:"resource_type,omitempty" validate:"omitempty,oneof=FUEL POTABLE_WATER DEMINERALIZED_WATER"`
	CapacityLiters *float64             `json:"capacity_liters,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateTankRequest) apply(tank *models.Tank) {
	if r.Name != nil {
		tank.Name = *r.Name
	}
	if r.ResourceType != nil {
		tank.ResourceType = *r.ResourceType
	}
	if r.CapacityLiters != nil {
		tank.CapacityLiters = *r.CapacityLiters
	}
}

// CreateScheduledTaskRequest represents the request to create a scheduled task
type CreateScheduledTaskRequest struct {
	Name        string              `json:"name" validate:"required,max=200"`
	Description string              `json:"description"`
	Category    models.TaskCategory `json:"category" validate:"required,oneof=ROUTINE_ACTIVITY OPERATIVE_TEST"`
	IsActive    *bool               `json:"is_active,omitempty"`
}

// UpdateScheduledTaskRequest is a partial update of a scheduled task
type UpdateScheduledTaskRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string              `json:"description,omitempty"`
	Category    *models.TaskCategory `json:"category,omitempty" validate:"omitempty,oneof=ROUTINE_ACTIVITY OPERATIVE_TEST"`
	IsActive    *bool                `json:"is_active,omitempty"`
}

func (r *UpdateScheduledTaskRequest) apply(task *models.ScheduledTask) {
	if r.Name != nil {
		task.Name = *r.Name
	}
	if r.Description != nil {
		task.Description = *r.Description
	}
	if r.Category != nil {
		task.Category = *r.Category
	}
	if r.IsActive != nil {
		task.IsActive = *r.IsActive
	}
}

// CreateOperationalParameterRequest represents the request to create an operational parameter
type CreateOperationalParameterRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Unit        string `json:"unit" validate:"required,max=20"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateOperationalParameterRequest is a partial update of an operational parameter
type UpdateOperationalParameterRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Unit        *string `json:"unit,omitempty" validate:"omitempty,min=1,max=20"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateOperationalParameterRequest) apply(parameter *models.OperationalParameter) {
	if r.Name != nil {
		parameter.Name = *r.Name
	}
	if r.Unit != nil {
		parameter.Unit = *r.Unit
	}
	if r.Description != nil {
		parameter.Description = *r.Description
	}
	if r.IsActive != nil {
		parameter.IsActive = *r.IsActive
	}
}

// CreateEquipment registers new equipment
func (s *CatalogService) CreateEquipment(ctx context.Context, req *CreateEquipmentRequest) (*models.Equipment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	status := req.Status
	if status == "" {
		status = models.EquipmentStatusAvailable
	}
	equipment := &models.Equipment{
		Name:     req.Name,
		Location: req.Location,
		Status:   status,
	}
	if err := s.equipment.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	return equipment, nil
}

// ListEquipment retrieves all equipment
func (s *CatalogService) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	equipment, err := s.equipment.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return equipment, nil
}

// GetEquipment retrieves equipment by ID
func (s *CatalogService) GetEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	equipment, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrEquipmentNotFound, "equipment")
	}
	return equipment, nil
}

// UpdateEquipment applies a partial update to equipment
func (s *CatalogService) UpdateEquipment(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*models.Equipment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	equipment, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(equipment)
	if err := s.equipment.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}
	return equipment, nil
}

// DeleteEquipment deletes equipment that no log or ticket references
func (s *CatalogService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetEquipment(ctx, id); err != nil {
		return err
	}

	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrEquipmentInUse
		}
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

// CreateTank registers a new tank
func (s *CatalogService) CreateTank(ctx context.Context, req *CreateTankRequest) (*models.Tank, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	tank := &models.Tank{
		Name:           req.Name,
		ResourceType:   req.ResourceType,
		CapacityLiters: req.CapacityLiters,
	}
	if err := s.tanks.Create(ctx, tank); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTankExists
		}
		return nil, fmt.Errorf("failed to create tank: %w", err)
	}
	return tank, nil
}

// ListTanks retrieves all tanks
func (s *CatalogService) ListTanks(ctx context.Context) ([]models.Tank, error) {
	tanks, err := s.tanks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tanks: %w", err)
	}
	return tanks, nil
}

// GetTank retrieves a tank by ID
func (s *CatalogService) GetTank(ctx context.Context, id uuid.UUID) (*models.Tank, error) {
	tank, err := s.tanks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTankNotFound, "tank")
	}
	return tank, nil
}

// UpdateTank applies a partial update to a tank
func (s *CatalogService) UpdateTank(ctx context.Context, id uuid.UUID, req *UpdateTankRequest) (*models.Tank, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	tank, err := s.GetTank(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(tank)
	if err := s.tanks.Update(ctx, tank); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTankExists
		}
		return nil, fmt.Errorf("failed to update tank: %w", err)
	}
	return tank, nil
}

// DeleteTank deletes a tank that no reading references
func (s *CatalogService) DeleteTank(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTank(ctx, id); err != nil {
		return err
	}

	if err := s.tanks.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrTankInUse
		}
		return fmt.Errorf("failed to delete tank: %w", err)
	}
	return nil
}

// CreateScheduledTask creates a new scheduled task, active unless stated otherwise
func (s *CatalogService) CreateScheduledTask(ctx context.Context, req *CreateScheduledTaskRequest) (*models.ScheduledTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task := &models.ScheduledTask{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create scheduled task: %w", err)
	}
	return task, nil
}

// ListScheduledTasks retrieves scheduled tasks
func (s *CatalogService) ListScheduledTasks(ctx context.Context, activeOnly bool) ([]models.ScheduledTask, error) {
	tasks, err := s.tasks.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled tasks: %w", err)
	}
	return tasks, nil
}

// UpdateScheduledTask applies a partial update to a scheduled task
func (s *CatalogService) UpdateScheduledTask(ctx context.Context, id uuid.UUID, req *UpdateScheduledTaskRequest) (*models.ScheduledTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrScheduledTaskNotFound, "scheduled task")
	}

	req.apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update scheduled task: %w", err)
	}
	return task, nil
}

// CreateOperationalParameter creates a new operational parameter, active unless stated otherwise
func (s *CatalogService) CreateOperationalParameter(ctx context.Context, req *CreateOperationalParameterRequest) (*models.OperationalParameter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	parameter := &models.OperationalParameter{
		Name:        req.Name,
		Unit:        req.Unit,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.parameters.Create(ctx, parameter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOperationalParameterExists
		}
		return nil, fmt.Errorf("failed to create operational parameter: %w", err)
	}
	return parameter, nil
}

// ListOperationalParameters retrieves operational parameters
func (s *CatalogService) ListOperationalParameters(ctx context.Context, activeOnly bool) ([]models.OperationalParameter, error) {
	parameters, err := s.parameters.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list operational parameters: %w", err)
	}
	return parameters, nil
}

// UpdateOperationalParameter applies a partial update to an operational parameter
func (s *CatalogService) UpdateOperationalParameter(ctx context.Context, id uuid.UUID, req *UpdateOperationalParameterRequest) (*models.OperationalParameter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	parameter, err := s.parameters.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOperationalParameterNotFound, "operational parameter")
	}

	req.apply(parameter)
	if err := s.parameters.Update(ctx, parameter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOperationalParameterExists
		}
		return nil, fmt.Errorf("failed to update operational parameter: %w", err)
	}
	return parameter, nil
}
