package models

import "github.com/google/uuid"

// MenuItem is a single dish/product under a category. Price is stored as
// a plain numeric amount; formatting is a presentation concern.
type MenuItem struct {
	BaseModel
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	Price       float64   `json:"price" gorm:"not null;default:0" validate:"gte=0"`
	Available   bool      `json:"available" gorm:"not null;default:true"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	Position    int       `json:"position" gorm:"not null"`
}

// TableName returns the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}
