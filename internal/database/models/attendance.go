package models

import (
	"github.com/google/uuid"
)

// ShiftAttendance is one row of a shift's attendance sheet
type ShiftAttendance struct {
	BaseModel
	ShiftID             uuid.UUID        `json:"shift_id" gorm:"type:uuid;not null;index"`
	ScheduledEmployeeID uuid.UUID        `json:"scheduled_employee_id" gorm:"type:uuid;not null"`
	ActualEmployeeID    uuid.UUID        `json:"actual_employee_id" gorm:"type:uuid;not null"`
	PositionID          uuid.UUID        `json:"position_id" gorm:"type:uuid;not null"`
	Status              AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'PRESENT'"`

	// Relationships
	Shift             *Shift    `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	ScheduledEmployee *Employee `json:"-" gorm:"foreignKey:ScheduledEmployeeID;constraint:OnDelete:RESTRICT"`
	ActualEmployee    *Employee `json:"-" gorm:"foreignKey:ActualEmployeeID;constraint:OnDelete:RESTRICT"`
	Position          *Position `json:"-" gorm:"foreignKey:PositionID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ShiftAttendance
func (ShiftAttendance) TableName() string {
	return "shift_attendance"
}
