package repository

import (
	"context"
	"time"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for operator account operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

// PositionRepositoryInterface defines the interface for position operations
type PositionRepositoryInterface interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error)
	GetAll(ctx context.Context) ([]models.Position, error)
}

// EmployeeRepositoryInterface defines the interface for employee operations
type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetAll(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
}

// ShiftGroupRepositoryInterface defines the interface for shift group and membership operations
type ShiftGroupRepositoryInterface interface {
	Create(ctx context.Context, group *models.ShiftGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShiftGroup, error)
	GetAll(ctx context.Context) ([]models.ShiftGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) (bool, error)
	GetMembers(ctx context.Context, groupID uuid.UUID) ([]models.Employee, error)
}

// ShiftRepositoryInterface defines the interface for shift operations
type ShiftRepositoryInterface interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	GetOpen(ctx context.Context) (*models.Shift, error)
	GetOpenByHolder(ctx context.Context, holderID uuid.UUID) (*models.Shift, error)
	GetClosed(ctx context.Context) ([]models.Shift, error)
	Close(ctx context.Context, id uuid.UUID, closedBy uuid.UUID, endTime time.Time) (bool, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, groupID uuid.UUID) error
}

// AttendanceRepositoryInterface defines the interface for attendance sheet operations
type AttendanceRepositoryInterface interface {
	CreateBatch(ctx context.Context, records []models.ShiftAttendance) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShiftAttendance, error)
	GetByShiftID(ctx context.Context, shiftID uuid.UUID) ([]models.ShiftAttendance, error)
	Update(ctx context.Context, record *models.ShiftAttendance) error
	DeleteByShiftID(ctx context.Context, shiftID uuid.UUID) error
}

// ShiftLogRepositoryInterface defines the interface for the append-only shift logs
type ShiftLogRepositoryInterface interface {
	CreateEquipmentStatusLog(ctx context.Context, entry *models.EquipmentStatusLog) error
	CreateEventLog(ctx context.Context, entry *models.EventLog) error
	CreateTaskLog(ctx context.Context, entry *models.TaskLog) error
	CreateNoveltyLog(ctx context.Context, entry *models.NoveltyLog) error
	CreateGenerationRamp(ctx context.Context, entry *models.GenerationRamp) error
	CreateTankReading(ctx context.Context, entry *models.TankReading) error
	CreateOperationalReading(ctx context.Context, entry *models.OperationalReading) error
	ListEquipmentStatusLogs(ctx context.Context, shiftID uuid.UUID) ([]models.EquipmentStatusLog, error)
	ListEventLogs(ctx context.Context, shiftID uuid.UUID) ([]models.EventLog, error)
	ListTaskLogs(ctx context.Context, shiftID uuid.UUID) ([]models.TaskLog, error)
	ListNoveltyLogs(ctx context.Context, shiftID uuid.UUID) ([]models.NoveltyLog, error)
	ListGenerationRamps(ctx context.Context, shiftID uuid.UUID) ([]models.GenerationRamp, error)
	ListTankReadings(ctx context.Context, shiftID uuid.UUID) ([]models.TankReading, error)
	ListOperationalReadings(ctx context.Context, shiftID uuid.UUID) ([]models.OperationalReading, error)
}

// EquipmentRepositoryInterface defines the interface for equipment operations
type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	GetAll(ctx context.Context) ([]models.Equipment, error)
	Update(ctx context.Context, equipment *models.Equipment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EquipmentStatus, reason string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TankRepositoryInterface defines the interface for tank operations
type TankRepositoryInterface interface {
	Create(ctx context.Context, tank *models.Tank) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tank, error)
	GetAll(ctx context.Context) ([]models.Tank, error)
	Update(ctx context.Context, tank *models.Tank) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduledTaskRepositoryInterface defines the interface for scheduled task operations
type ScheduledTaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.ScheduledTask) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduledTask, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.ScheduledTask, error)
	Update(ctx context.Context, task *models.ScheduledTask) error
}

// OperationalParameterRepositoryInterface defines the interface for operational parameter operations
type OperationalParameterRepositoryInterface interface {
	Create(ctx context.Context, parameter *models.OperationalParameter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OperationalParameter, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.OperationalParameter, error)
	Update(ctx context.Context, parameter *models.OperationalParameter) error
}

// MaintenanceTicketRepositoryInterface defines the interface for maintenance ticket operations
type MaintenanceTicketRepositoryInterface interface {
	Create(ctx context.Context, ticket *models.MaintenanceTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceTicket, error)
	GetAll(ctx context.Context) ([]models.MaintenanceTicket, error)
	Update(ctx context.Context, ticket *models.MaintenanceTicket) error
}

// LicenseRepositoryInterface defines the interface for license operations
type LicenseRepositoryInterface interface {
	Create(ctx context.Context, license *models.License) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.License, error)
	GetAll(ctx context.Context) ([]models.License, error)
	GetByStatus(ctx context.Context, status models.LicenseStatus) ([]models.License, error)
	Close(ctx context.Context, id uuid.UUID, closedBy uuid.UUID, endTime time.Time) (bool, error)
}

// TransactorInterface runs fn against repositories bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactorInterface interface {
	Transaction(ctx context.Context, fn func(repos *Repositories) error) error
}
