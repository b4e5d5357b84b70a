package models

// Equipment is a plant unit whose availability is tracked per shift.
// Status mirrors the latest equipment status log entry.
type Equipment struct {
	BaseModel
	Name                 string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Location             string          `json:"location" gorm:"size:200"`
	Status               EquipmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	UnavailabilityReason string          `json:"unavailability_reason" gorm:"type:text"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
