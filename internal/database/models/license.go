package models

import (
	"time"

	"github.com/google/uuid"
)

// License is a work permit over a plant unit
type License struct {
	BaseModel
	LicenseNumber   string        `json:"license_number" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	AffectedUnit    string        `json:"affected_unit" gorm:"not null;size:100"`
	Description     string        `json:"description" gorm:"type:text"`
	Status          LicenseStatus `json:"status" gorm:"type:varchar(10);not null;default:'ACTIVE'"`
	StartTime       time.Time     `json:"start_time" gorm:"not null"`
	EndTime         *time.Time    `json:"end_time,omitempty"`
	CreatedByUserID uuid.UUID     `json:"created_by_user_id" gorm:"type:uuid;not null"`
	ClosedByUserID  *uuid.UUID    `json:"closed_by_user_id,omitempty" gorm:"type:uuid"`

	// Relationships
	CreatedBy *User `json:"-" gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT"`
	ClosedBy  *User `json:"-" gorm:"foreignKey:ClosedByUserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for License
func (License) TableName() string {
	return "licenses"
}
