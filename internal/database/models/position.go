package models

// Position is a control-room post an employee can be rostered on
type Position struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
