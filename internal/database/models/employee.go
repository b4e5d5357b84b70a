package models

import (
	"github.com/google/uuid"
)

// Employee is a person who can be rostered on a shift
type Employee struct {
	BaseModel
	FullName       string         `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	BadgeID        string         `json:"badge_id" gorm:"uniqueIndex;not null;size:40" validate:"required,max=40"`
	EmploymentType EmploymentType `json:"employment_type" gorm:"type:varchar(20);not null;default:'PERMANENT'"`
	BasePositionID *uuid.UUID     `json:"base_position_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	BasePosition *Position `json:"-" gorm:"foreignKey:BasePositionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
