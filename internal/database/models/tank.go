package models

// Tank is a storage vessel whose level is read during a shift
type Tank struct {
	BaseModel
	Name           string       `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	ResourceType   ResourceType `json:"resource_type" gorm:"type:varchar(30);not null"`
	CapacityLiters float64      `json:"capacity_liters" gorm:"not null"`
}

// TableName returns the table name for Tank
func (Tank) TableName() string {
	return "tanks"
}
