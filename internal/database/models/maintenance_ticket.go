package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceTicket tracks a fault report or planned intervention on equipment
type MaintenanceTicket struct {
	BaseModel
	EquipmentID     uuid.UUID    `json:"equipment_id" gorm:"type:uuid;not null;index"`
	Description     string       `json:"description" gorm:"type:text;not null"`
	Impact          string       `json:"impact" gorm:"type:text"`
	TicketType      TicketType   `json:"ticket_type" gorm:"type:varchar(30);not null"`
	Status          TicketStatus `json:"status" gorm:"type:varchar(20);not null;default:'OPEN'"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
	CreatedByUserID uuid.UUID    `json:"created_by_user_id" gorm:"type:uuid;not null"`

	// Relationships
	Equipment *Equipment `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
	CreatedBy *User      `json:"-" gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for MaintenanceTicket
func (MaintenanceTicket) TableName() string {
	return "maintenance_tickets"
}
