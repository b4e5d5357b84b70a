package models

// User is an operator account allowed to hold shifts
type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	FullName     string   `json:"full_name" gorm:"size:200"`
	BadgeID      string   `json:"badge_id" gorm:"uniqueIndex;not null;size:40" validate:"required,max=40"`
	Role         UserRole `json:"role" gorm:"type:varchar(30);not null" validate:"required"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
