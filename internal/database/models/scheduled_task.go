package models

// ScheduledTask is a recurring activity an operator logs as completed
type ScheduledTask struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string       `json:"description" gorm:"type:text"`
	Category    TaskCategory `json:"category" gorm:"type:varchar(30);not null"`
	IsActive    bool         `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for ScheduledTask
func (ScheduledTask) TableName() string {
	return "scheduled_tasks"
}
