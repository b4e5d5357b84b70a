package service_test

import (
	"context"
	"time"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	"control-room-backend/internal/mocks"
	"control-room-backend/internal/repository"
	"control-room-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	// 09:30 UTC falls in the first of three slots of a day starting at 07:00
	fixedNow     = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	testCalendar = &service.Calendar{ShiftsPerDay: 3, DayStartHour: 7, Location: time.UTC}
)

// recordingTransactor runs fn against the mocked repositories and counts outcomes
type recordingTransactor struct {
	repos     *repository.Repositories
	calls     int
	rollbacks int
}

func (t *recordingTransactor) Transaction(_ context.Context, fn func(repos *repository.Repositories) error) error {
	t.calls++
	if err := fn(t.repos); err != nil {
		t.rollbacks++
		return err
	}
	return nil
}

// repoMocks bundles one mock per repository behind a single Repositories value
type repoMocks struct {
	users      *mocks.MockUserRepositoryInterface
	positions  *mocks.MockPositionRepositoryInterface
	employees  *mocks.MockEmployeeRepositoryInterface
	groups     *mocks.MockShiftGroupRepositoryInterface
	shifts     *mocks.MockShiftRepositoryInterface
	attendance *mocks.MockAttendanceRepositoryInterface
	logs       *mocks.MockShiftLogRepositoryInterface
	equipment  *mocks.MockEquipmentRepositoryInterface
	tanks      *mocks.MockTankRepositoryInterface
	tasks      *mocks.MockScheduledTaskRepositoryInterface
	parameters *mocks.MockOperationalParameterRepositoryInterface
	tickets    *mocks.MockMaintenanceTicketRepositoryInterface
	licenses   *mocks.MockLicenseRepositoryInterface

	repos *repository.Repositories
	tx    *recordingTransactor
	clock *clock.Fake
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		users:      mocks.NewMockUserRepositoryInterface(ctrl),
		positions:  mocks.NewMockPositionRepositoryInterface(ctrl),
		employees:  mocks.NewMockEmployeeRepositoryInterface(ctrl),
		groups:     mocks.NewMockShiftGroupRepositoryInterface(ctrl),
		shifts:     mocks.NewMockShiftRepositoryInterface(ctrl),
		attendance: mocks.NewMockAttendanceRepositoryInterface(ctrl),
		logs:       mocks.NewMockShiftLogRepositoryInterface(ctrl),
		equipment:  mocks.NewMockEquipmentRepositoryInterface(ctrl),
		tanks:      mocks.NewMockTankRepositoryInterface(ctrl),
		tasks:      mocks.NewMockScheduledTaskRepositoryInterface(ctrl),
		parameters: mocks.NewMockOperationalParameterRepositoryInterface(ctrl),
		tickets:    mocks.NewMockMaintenanceTicketRepositoryInterface(ctrl),
		licenses:   mocks.NewMockLicenseRepositoryInterface(ctrl),
		clock:      clock.NewFake(fixedNow),
	}
	m.repos = &repository.Repositories{
		Users:      m.users,
		Positions:  m.positions,
		Employees:  m.employees,
		Groups:     m.groups,
		Shifts:     m.shifts,
		Attendance: m.attendance,
		ShiftLogs:  m.logs,
		Equipment:  m.equipment,
		Tanks:      m.tanks,
		Tasks:      m.tasks,
		Parameters: m.parameters,
		Tickets:    m.tickets,
		Licenses:   m.licenses,
	}
	m.tx = &recordingTransactor{repos: m.repos}
	return m
}

func openShift(holderID uuid.UUID) *models.Shift {
	return &models.Shift{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		StartTime:        fixedNow.Add(-2 * time.Hour),
		Status:           models.ShiftStatusOpen,
		IncomingHolderID: holderID,
		ScheduledGroupID: uuid.New(),
		OperationalDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Designator:       1,
	}
}

func closedShift(holderID uuid.UUID) *models.Shift {
	shift := openShift(holderID)
	end := fixedNow.Add(-time.Hour)
	shift.Status = models.ShiftStatusClosed
	shift.EndTime = &end
	shift.OutgoingHolderID = &holderID
	return shift
}

func rosteredEmployee(name string) models.Employee {
	positionID := uuid.New()
	return models.Employee{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		FullName:       name,
		BadgeID:        "B-" + name,
		EmploymentType: models.EmploymentTypePermanent,
		BasePositionID: &positionID,
	}
}
