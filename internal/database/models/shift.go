package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a bounded work period held by exactly one operator.
// EndTime is set if and only if Status is CLOSED.
type Shift struct {
	BaseModel
	StartTime        time.Time   `json:"start_time" gorm:"not null;index"`
	EndTime          *time.Time  `json:"end_time,omitempty"`
	Status           ShiftStatus `json:"status" gorm:"type:varchar(10);not null;default:'OPEN';index"`
	OutgoingHolderID *uuid.UUID  `json:"outgoing_holder_id,omitempty" gorm:"type:uuid;index"`
	IncomingHolderID uuid.UUID   `json:"incoming_holder_id" gorm:"type:uuid;not null;index"`
	ScheduledGroupID uuid.UUID   `json:"scheduled_group_id" gorm:"type:uuid;not null;index"`
	OperationalDate  time.Time   `json:"operational_date" gorm:"type:date;not null"`
	Designator       int         `json:"designator" gorm:"not null"`

	// Relationships
	OutgoingHolder *User       `json:"-" gorm:"foreignKey:OutgoingHolderID;constraint:OnDelete:RESTRICT"`
	IncomingHolder *User       `json:"-" gorm:"foreignKey:IncomingHolderID;constraint:OnDelete:RESTRICT"`
	ScheduledGroup *ShiftGroup `json:"-" gorm:"foreignKey:ScheduledGroupID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// IsOpen reports whether logs may still be appended to the shift
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftStatusOpen
}
