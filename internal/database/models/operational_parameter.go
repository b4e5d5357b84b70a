package models

// OperationalParameter is a measured process variable (pressure, temperature, ...)
type OperationalParameter struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Unit        string `json:"unit" gorm:"not null;size:20"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for OperationalParameter
func (OperationalParameter) TableName() string {
	return "operational_parameters"
}
