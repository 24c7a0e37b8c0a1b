package models

// Business is the tenant root entity. Public menus resolve it by hostname
// slug/domain; the admin surface resolves it through BusinessAdmin.
type Business struct {
	BaseModel
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:63" validate:"required,min=2,max=63"`
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Domain       string `json:"domain" gorm:"size:255;uniqueIndex:idx_businesses_domain,where:domain <> ''"`
	Theme        Theme  `json:"theme" gorm:"type:varchar(20);not null;default:'dark'"`
	LogoURL      string `json:"logo_url" gorm:"size:500"`
	Phone        string `json:"phone" gorm:"size:40"`
	Address      string `json:"address" gorm:"size:255"`
	Instagram    string `json:"instagram" gorm:"size:100"`
	OpeningHours string `json:"opening_hours" gorm:"type:text"`

	// Relationships
	Admins     []BusinessAdmin `json:"admins,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Categories []MenuCategory  `json:"categories,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Business
func (Business) TableName() string {
	return "businesses"
}
