package models

import (
	"time"

	"github.com/google/uuid"
)

// Per-shift logs are append-only. Each row belongs to exactly one shift and,
// except EventLog, to the operator who wrote it.

// EquipmentStatusLog records a change of availability of a plant unit
type EquipmentStatusLog struct {
	BaseModel
	ShiftID     uuid.UUID       `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null"`
	EquipmentID uuid.UUID       `json:"equipment_id" gorm:"type:uuid;not null;index"`
	Status      EquipmentStatus `json:"status" gorm:"type:varchar(20);not null"`
	Reason      string          `json:"reason" gorm:"type:text"`
	Timestamp   time.Time       `json:"timestamp" gorm:"not null"`

	// Relationships
	Shift     *Shift     `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User      *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Equipment *Equipment `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for EquipmentStatusLog
func (EquipmentStatusLog) TableName() string {
	return "equipment_status_logs"
}

// EventLog records an operational event (trip, outage, synchronization, ...)
type EventLog struct {
	BaseModel
	ShiftID     uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index"`
	EventType   EventType `json:"event_type" gorm:"type:varchar(30);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`

	// Relationships
	Shift *Shift `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventLog
func (EventLog) TableName() string {
	return "event_logs"
}

// TaskLog records completion of a scheduled task
type TaskLog struct {
	BaseModel
	ShiftID         uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	ScheduledTaskID uuid.UUID `json:"scheduled_task_id" gorm:"type:uuid;not null;index"`
	CompletionTime  time.Time `json:"completion_time" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`

	// Relationships
	Shift         *Shift         `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User          *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	ScheduledTask *ScheduledTask `json:"-" gorm:"foreignKey:ScheduledTaskID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TaskLog
func (TaskLog) TableName() string {
	return "task_logs"
}

// NoveltyLog is a free-form note for the next shift
type NoveltyLog struct {
	BaseModel
	ShiftID     uuid.UUID   `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null"`
	NoveltyType NoveltyType `json:"novelty_type" gorm:"type:varchar(30);not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	Timestamp   time.Time   `json:"timestamp" gorm:"not null"`

	// Relationships
	Shift *Shift `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for NoveltyLog
func (NoveltyLog) TableName() string {
	return "novelty_logs"
}

// GenerationRamp records a load change requested by the grid operator.
// ActualRateMWPerMin and IsCompliant are computed server side.
type GenerationRamp struct {
	BaseModel
	ShiftID             uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	GridOperatorName    string    `json:"grid_operator_name" gorm:"size:200"`
	StartTime           time.Time `json:"start_time" gorm:"not null"`
	EndTime             time.Time `json:"end_time" gorm:"not null"`
	InitialLoadMW       float64   `json:"initial_load_mw" gorm:"not null"`
	FinalLoadMW         float64   `json:"final_load_mw" gorm:"not null"`
	TargetRateMWPerMin  float64   `json:"target_rate_mw_per_min" gorm:"not null"`
	ActualRateMWPerMin  float64   `json:"actual_rate_mw_per_min" gorm:"not null"`
	IsCompliant         bool      `json:"is_compliant" gorm:"not null"`
	NonComplianceReason string    `json:"non_compliance_reason" gorm:"type:text"`

	// Relationships
	Shift *Shift `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GenerationRamp
func (GenerationRamp) TableName() string {
	return "generation_ramps"
}

// TankReading records the level of a tank
type TankReading struct {
	BaseModel
	ShiftID          uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	TankID           uuid.UUID `json:"tank_id" gorm:"type:uuid;not null;index"`
	LevelLiters      float64   `json:"level_liters" gorm:"not null"`
	ReadingTimestamp time.Time `json:"reading_timestamp" gorm:"not null"`

	// Relationships
	Shift *Shift `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Tank  *Tank  `json:"-" gorm:"foreignKey:TankID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TankReading
func (TankReading) TableName() string {
	return "tank_readings"
}

// OperationalReading records the value of a process parameter on a unit
type OperationalReading struct {
	BaseModel
	ShiftID     uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	ParameterID uuid.UUID `json:"parameter_id" gorm:"type:uuid;not null;index"`
	EquipmentID uuid.UUID `json:"equipment_id" gorm:"type:uuid;not null;index"`
	Value       float64   `json:"value" gorm:"not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`

	// Relationships
	Shift     *Shift                `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User      *User                 `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Parameter *OperationalParameter `json:"-" gorm:"foreignKey:ParameterID;constraint:OnDelete:RESTRICT"`
	Equipment *Equipment            `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for OperationalReading
func (OperationalReading) TableName() string {
	return "operational_readings"
}
