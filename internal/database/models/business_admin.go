package models

import "github.com/google/uuid"

// BusinessAdmin links a user to a business they may manage. Created at
// onboarding completion; consumed by the access gate.
type BusinessAdmin struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_business_admins_user_business"`
	BusinessID uuid.UUID `json:"business_id" gorm:"type:uuid;not null;uniqueIndex:idx_business_admins_user_business"`
	Role       AdminRole `json:"role" gorm:"type:varchar(20);not null;default:'owner'"`
}

// TableName returns the table name for BusinessAdmin
func (BusinessAdmin) TableName() string {
	return "business_admins"
}
