package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups every repository bound to the same *gorm.DB handle
type Repositories struct {
	Users      UserRepositoryInterface
	Positions  PositionRepositoryInterface
	Employees  EmployeeRepositoryInterface
	Groups     ShiftGroupRepositoryInterface
	Shifts     ShiftRepositoryInterface
	Attendance AttendanceRepositoryInterface
	ShiftLogs  ShiftLogRepositoryInterface
	Equipment  EquipmentRepositoryInterface
	Tanks      TankRepositoryInterface
	Tasks      ScheduledTaskRepositoryInterface
	Parameters OperationalParameterRepositoryInterface
	Tickets    MaintenanceTicketRepositoryInterface
	Licenses   LicenseRepositoryInterface
}

// NewRepositories creates all repositories on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Positions:  NewPositionRepository(db),
		Employees:  NewEmployeeRepository(db),
		Groups:     NewShiftGroupRepository(db),
		Shifts:     NewShiftRepository(db),
		Attendance: NewAttendanceRepository(db),
		ShiftLogs:  NewShiftLogRepository(db),
		Equipment:  NewEquipmentRepository(db),
		Tanks:      NewTankRepository(db),
		Tasks:      NewScheduledTaskRepository(db),
		Parameters: NewOperationalParameterRepository(db),
		Tickets:    NewMaintenanceTicketRepository(db),
		Licenses:   NewLicenseRepository(db),
	}
}

// Store opens transactions on the shared connection pool
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn inside a database transaction
func (s *Store) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
