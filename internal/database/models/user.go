package models

// User represents an account from the auth surface. Identity only; the
// relationship to a business lives in BusinessAdmin.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"size:100"`
	Provider     string `json:"provider" gorm:"size:40;not null;default:'password'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
