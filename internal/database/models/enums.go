package models

// UserRole is the authorization role of an operator account
type UserRole string

const (
	UserRoleOpsManager          UserRole = "OPS_MANAGER"
	UserRoleShiftSuperintendent UserRole = "SHIFT_SUPERINTENDENT"
)

// EmploymentType distinguishes permanent staff from temporary hires
type EmploymentType string

const (
	EmploymentTypePermanent EmploymentType = "PERMANENT"
	EmploymentTypeTemporary EmploymentType = "TEMPORARY"
)

// ShiftStatus is the lifecycle state of a shift. OPEN -> CLOSED is the only transition.
type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "OPEN"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

// AttendanceStatus records whether a rostered employee worked the shift
type AttendanceStatus string

const (
	AttendanceStatusPresent  AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent   AttendanceStatus = "ABSENT"
	AttendanceStatusCovering AttendanceStatus = "COVERING"
)

// EquipmentStatus is the availability of a plant unit
type EquipmentStatus string

const (
	EquipmentStatusInService    EquipmentStatus = "IN_SERVICE"
	EquipmentStatusAvailable    EquipmentStatus = "AVAILABLE"
	EquipmentStatusOutOfService EquipmentStatus = "OUT_OF_SERVICE"
)

// EventType classifies entries of the shift event log
type EventType string

const (
	EventTypeProtectionTrip      EventType = "PROTECTION_TRIP"
	EventTypeForcedOutage        EventType = "FORCED_OUTAGE"
	EventTypeLoadReduction       EventType = "LOAD_REDUCTION"
	EventTypeUnitSynchronization EventType = "UNIT_SYNCHRONIZATION"
	EventTypeUnitShutdown        EventType = "UNIT_SHUTDOWN"
	EventTypeRoutineTest         EventType = "ROUTINE_TEST"
	EventTypeOther               EventType = "OTHER"
)

// NoveltyType classifies free-form shift notes
type NoveltyType string

const (
	NoveltyTypeGeneral               NoveltyType = "GENERAL"
	NoveltyTypeSpecialInstruction    NoveltyType = "SPECIAL_INSTRUCTION"
	NoveltyTypeSafetyIncident        NoveltyType = "SAFETY_INCIDENT"
	NoveltyTypeEnvironmentalIncident NoveltyType = "ENVIRONMENTAL_INCIDENT"
)

// ResourceType is the fluid stored in a tank
type ResourceType string

const (
	ResourceTypeFuel               ResourceType = "FUEL"
	ResourceTypePotableWater       ResourceType = "POTABLE_WATER"
	ResourceTypeDemineralizedWater ResourceType = "DEMINERALIZED_WATER"
)

// TaskCategory groups scheduled tasks
type TaskCategory string

const (
	TaskCategoryRoutineActivity TaskCategory = "ROUTINE_ACTIVITY"
	TaskCategoryOperativeTest   TaskCategory = "OPERATIVE_TEST"
)

// TicketType distinguishes fault reports from planned work
type TicketType string

const (
	TicketTypeFaultReport        TicketType = "FAULT_REPORT"
	TicketTypePlannedMaintenance TicketType = "PLANNED_MAINTENANCE"
)

// TicketStatus is the progress of a maintenance ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusCompleted  TicketStatus = "COMPLETED"
)

// LicenseStatus is the state of a work license. ACTIVE -> CLOSED only.
type LicenseStatus string

const (
	LicenseStatusActive LicenseStatus = "ACTIVE"
	LicenseStatusClosed LicenseStatus = "CLOSED"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOpsManager, UserRoleShiftSuperintendent:
		return true
	}
	return false
}

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusCovering:
		return true
	}
	return false
}

// IsValid checks if the EquipmentStatus is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusInService, EquipmentStatusAvailable, EquipmentStatusOutOfService:
		return true
	}
	return false
}

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusCompleted:
		return true
	}
	return false
}
