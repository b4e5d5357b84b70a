package service

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CredentialVerifier hashes and checks operator secrets
type CredentialVerifier interface {
	Hash(secret string) (string, error)
	Verify(secret string, storedHash string) bool
}

// ShiftServiceInterface defines the interface for the shift lifecycle
type ShiftServiceInterface interface {
	OpenShift(ctx context.Context, actorID uuid.UUID, req *OpenShiftRequest) (*ShiftResponse, error)
	CloseShift(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID) (*ShiftResponse, error)
	GetShift(ctx context.Context, shiftID uuid.UUID) (*ShiftResponse, error)
	GetShiftDetails(ctx context.Context, shiftID uuid.UUID) (*ShiftDetailResponse, error)
	GetActiveShiftForUser(ctx context.Context, userID uuid.UUID) (*ShiftResponse, error)
	AssignGroup(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID, req *AssignGroupRequest) (*ShiftResponse, error)
	ListAttendance(ctx context.Context, shiftID uuid.UUID) ([]models.ShiftAttendance, error)
	UpdateAttendance(ctx context.Context, attendanceID uuid.UUID, actorID uuid.UUID, req *UpdateAttendanceRequest) (*models.ShiftAttendance, error)
}

// HandoverServiceInterface defines the interface for the two-party shift handover
type HandoverServiceInterface interface {
	Handover(ctx context.Context, outgoingUserID uuid.UUID, req *HandoverRequest) (*ShiftResponse, error)
}

// ShiftLogServiceInterface defines the interface for the per-shift logs
type ShiftLogServiceInterface interface {
	AppendLog(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID, payload LogPayload) (interface{}, error)
	ListLogs(ctx context.Context, shiftID uuid.UUID, kind LogKind) (interface{}, error)
}

// PersonnelServiceInterface defines the interface for positions, employees and shift groups
type PersonnelServiceInterface interface {
	CreatePosition(ctx context.Context, req *CreatePositionRequest) (*models.Position, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error)
	CreateGroup(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error)
	ListGroups(ctx context.Context) ([]GroupResponse, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*GroupWithMembersResponse, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	AddEmployeeToGroup(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error
	RemoveEmployeeFromGroup(ctx context.Context, groupID uuid.UUID, employeeID uuid.UUID) error
}

// CatalogServiceInterface defines the interface for the plant catalogs
type CatalogServiceInterface interface {
	CreateEquipment(ctx context.Context, req *CreateEquipmentRequest) (*models.Equipment, error)
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	CreateTank(ctx context.Context, req *CreateTankRequest) (*models.Tank, error)
	ListTanks(ctx context.Context) ([]models.Tank, error)
	GetTank(ctx context.Context, id uuid.UUID) (*models.Tank, error)
	UpdateTank(ctx context.Context, id uuid.UUID, req *UpdateTankRequest) (*models.Tank, error)
	DeleteTank(ctx context.Context, id uuid.UUID) error
	CreateScheduledTask(ctx context.Context, req *CreateScheduledTaskRequest) (*models.ScheduledTask, error)
	ListScheduledTasks(ctx context.Context, activeOnly bool) ([]models.ScheduledTask, error)
	UpdateScheduledTask(ctx context.Context, id uuid.UUID, req *UpdateScheduledTaskRequest) (*models.ScheduledTask, error)
	CreateOperationalParameter(ctx context.Context, req *CreateOperationalParameterRequest) (*models.OperationalParameter, error)
	ListOperationalParameters(ctx context.Context, activeOnly bool) ([]models.OperationalParameter, error)
	UpdateOperationalParameter(ctx context.Context, id uuid.UUID, req *UpdateOperationalParameterRequest) (*models.OperationalParameter, error)
}

// UserServiceInterface defines the interface for operator accounts
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}

// MaintenanceTicketServiceInterface defines the interface for maintenance tickets
type MaintenanceTicketServiceInterface interface {
	CreateTicket(ctx context.Context, actorID uuid.UUID, req *CreateTicketRequest) (*models.MaintenanceTicket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*models.MaintenanceTicket, error)
	ListTickets(ctx context.Context) ([]models.MaintenanceTicket, error)
	UpdateTicket(ctx context.Context, id uuid.UUID, req *UpdateTicketRequest) (*models.MaintenanceTicket, error)
}

// LicenseServiceInterface defines the interface for work licenses
type LicenseServiceInterface interface {
	CreateLicense(ctx context.Context, actorID uuid.UUID, req *CreateLicenseRequest) (*models.License, error)
	GetLicense(ctx context.Context, id uuid.UUID) (*models.License, error)
	ListLicenses(ctx context.Context, status *models.LicenseStatus) ([]models.License, error)
	CloseLicense(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.License, error)
}

// ReportServiceInterface defines the interface for the closed shift archive
type ReportServiceInterface interface {
	ListClosedShifts(ctx context.Context) ([]ShiftResponse, error)
	GetReport(ctx context.Context, shiftID uuid.UUID) (*ShiftDetailResponse, error)
}
