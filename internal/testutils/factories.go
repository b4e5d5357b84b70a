package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

// next returns a process-wide sequence number for unique names and badges
func next() int64 {
	return sequence.Add(1)
}

func newBase() models.BaseModel {
	now := time.Now().UTC()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test superintendent account. PasswordHash is left for the caller to fill.
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		BaseModel: newBase(),
		Username:  fmt.Sprintf("operator%d", n),
		FullName:  fmt.Sprintf("Operator %d", n),
		BadgeID:   fmt.Sprintf("U-%05d", n),
		Role:      models.UserRoleShiftSuperintendent,
	}
}

// WithRole creates a test User with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithUsername creates a test User with a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test Position with default values
func (f *PositionFactory) Create() *models.Position {
	return &models.Position{
		BaseModel:   newBase(),
		Name:        fmt.Sprintf("Board Operator %d", next()),
		Description: "Main control board",
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a permanent test Employee without a base position
func (f *EmployeeFactory) Create() *models.Employee {
	n := next()
	return &models.Employee{
		BaseModel:      newBase(),
		FullName:       fmt.Sprintf("Employee %d", n),
		BadgeID:        fmt.Sprintf("E-%05d", n),
		EmploymentType: models.EmploymentTypePermanent,
	}
}

// WithPosition creates a test Employee assigned to a base position
func (f *EmployeeFactory) WithPosition(positionID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.BasePositionID = &positionID
	return employee
}

// ShiftGroupFactory provides methods to create test ShiftGroup data
type ShiftGroupFactory struct{}

// NewShiftGroupFactory creates a new ShiftGroupFactory
func NewShiftGroupFactory() *ShiftGroupFactory {
	return &ShiftGroupFactory{}
}

// Create creates a test ShiftGroup with default values
func (f *ShiftGroupFactory) Create() *models.ShiftGroup {
	return &models.ShiftGroup{
		BaseModel: newBase(),
		Name:      fmt.Sprintf("Group %d", next()),
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Open creates an open test Shift held by holderID for groupID
func (f *ShiftFactory) Open(holderID, groupID uuid.UUID) *models.Shift {
	start := time.Now().UTC().Truncate(time.Second)
	return &models.Shift{
		BaseModel:        newBase(),
		StartTime:        start,
		Status:           models.ShiftStatusOpen,
		IncomingHolderID: holderID,
		ScheduledGroupID: groupID,
		OperationalDate:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		Designator:       1,
	}
}

// Closed creates a closed test Shift that ended one hour after it started
func (f *ShiftFactory) Closed(holderID, groupID uuid.UUID) *models.Shift {
	shift := f.Open(holderID, groupID)
	end := shift.StartTime.Add(time.Hour)
	shift.EndTime = &end
	shift.Status = models.ShiftStatusClosed
	shift.OutgoingHolderID = &holderID
	return shift
}

// CatalogFactory provides methods to create test equipment, tanks, tasks and parameters
type CatalogFactory struct{}

// NewCatalogFactory creates a new CatalogFactory
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{}
}

// Equipment creates available test Equipment
func (f *CatalogFactory) Equipment() *models.Equipment {
	return &models.Equipment{
		BaseModel: newBase(),
		Name:      fmt.Sprintf("Feed Pump %d", next()),
		Location:  "Turbine hall",
		Status:    models.EquipmentStatusAvailable,
	}
}

// Tank creates a test fuel Tank
func (f *CatalogFactory) Tank() *models.Tank {
	return &models.Tank{
		BaseModel:      newBase(),
		Name:           fmt.Sprintf("Fuel Tank %d", next()),
		ResourceType:   models.ResourceTypeFuel,
		CapacityLiters: 50000,
	}
}

// ScheduledTask creates an active routine ScheduledTask
func (f *CatalogFactory) ScheduledTask() *models.ScheduledTask {
	return &models.ScheduledTask{
		BaseModel: newBase(),
		Name:      fmt.Sprintf("Lube oil check %d", next()),
		Category:  models.TaskCategoryRoutineActivity,
		IsActive:  true,
	}
}

// OperationalParameter creates an active OperationalParameter
func (f *CatalogFactory) OperationalParameter() *models.OperationalParameter {
	return &models.OperationalParameter{
		BaseModel: newBase(),
		Name:      fmt.Sprintf("Steam pressure %d", next()),
		Unit:      "bar",
		IsActive:  true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Position *PositionFactory
	Employee *EmployeeFactory
	Group    *ShiftGroupFactory
	Shift    *ShiftFactory
	Catalog  *CatalogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Position: NewPositionFactory(),
		Employee: NewEmployeeFactory(),
		Group:    NewShiftGroupFactory(),
		Shift:    NewShiftFactory(),
		Catalog:  NewCatalogFactory(),
	}
}
