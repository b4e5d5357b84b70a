package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftGroup is a named roster template
type ShiftGroup struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
}

// TableName returns the table name for ShiftGroup
func (ShiftGroup) TableName() string {
	return "shift_groups"
}

// GroupMembership is the explicit relation between a group and its employees
type GroupMembership struct {
	GroupID    uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Group    *ShiftGroup `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Employee *Employee   `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}
