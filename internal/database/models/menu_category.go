package models

import "github.com/google/uuid"

// MenuCategory groups menu items for display. Position is unique within a
// business and drives ordering; reordering swaps adjacent positions.
type MenuCategory struct {
	BaseModel
	BusinessID uuid.UUID `json:"business_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_menu_categories_business_position"`
	Title      string    `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Position   int       `json:"position" gorm:"not null;uniqueIndex:idx_menu_categories_business_position"`

	// Relationships
	Items []MenuItem `json:"items,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MenuCategory
func (MenuCategory) TableName() string {
	return "menu_categories"
}
