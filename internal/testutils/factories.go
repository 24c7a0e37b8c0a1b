package testutils

import (
	"time"

	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// unique per call to avoid collisions on the email index
		Email:        "owner-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Provider:     "password",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// BusinessFactory provides methods to create test Business data
type BusinessFactory struct{}

// NewBusinessFactory creates a new BusinessFactory
func NewBusinessFactory() *BusinessFactory {
	return &BusinessFactory{}
}

// Create creates a test Business with default values
func (f *BusinessFactory) Create() *models.Business {
	id := uuid.New()
	slug := "biz-" + id.String()[:8]
	return &models.Business{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:  slug,
		Name:  "Test Restaurant",
		Theme: models.ThemeDark,
	}
}

// WithSlug sets a custom slug for the business
func (f *BusinessFactory) WithSlug(slug string) *models.Business {
	business := f.Create()
	business.Slug = slug
	return business
}

// WithTheme sets a custom theme for the business
func (f *BusinessFactory) WithTheme(theme models.Theme) *models.Business {
	business := f.Create()
	business.Theme = theme
	return business
}

// BusinessAdminFactory provides methods to create test BusinessAdmin data
type BusinessAdminFactory struct{}

// NewBusinessAdminFactory creates a new BusinessAdminFactory
func NewBusinessAdminFactory() *BusinessAdminFactory {
	return &BusinessAdminFactory{}
}

// Create creates a test BusinessAdmin linking the given user and business
func (f *BusinessAdminFactory) Create(userID, businessID uuid.UUID) *models.BusinessAdmin {
	return &models.BusinessAdmin{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:     userID,
		BusinessID: businessID,
		Role:       models.AdminRoleOwner,
	}
}

// MenuCategoryFactory provides methods to create test MenuCategory data
type MenuCategoryFactory struct{}

// NewMenuCategoryFactory creates a new MenuCategoryFactory
func NewMenuCategoryFactory() *MenuCategoryFactory {
	return &MenuCategoryFactory{}
}

// Create creates a test MenuCategory under the given business
func (f *MenuCategoryFactory) Create(businessID uuid.UUID, position int) *models.MenuCategory {
	return &models.MenuCategory{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BusinessID: businessID,
		Title:      "Test Category",
		Position:   position,
	}
}

// WithTitle sets a custom title for the category
func (f *MenuCategoryFactory) WithTitle(businessID uuid.UUID, position int, title string) *models.MenuCategory {
	category := f.Create(businessID, position)
	category.Title = title
	return category
}

// MenuItemFactory provides methods to create test MenuItem data
type MenuItemFactory struct{}

// NewMenuItemFactory creates a new MenuItemFactory
func NewMenuItemFactory() *MenuItemFactory {
	return &MenuItemFactory{}
}

// Create creates a test MenuItem under the given category
func (f *MenuItemFactory) Create(categoryID uuid.UUID, position int) *models.MenuItem {
	return &models.MenuItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CategoryID:  categoryID,
		Name:        "Test Item",
		Description: "A test menu item",
		Price:       9900,
		Available:   true,
		ImageURL:    "menu-items/sample",
		Position:    position,
	}
}

// WithName sets a custom name for the item
func (f *MenuItemFactory) WithName(categoryID uuid.UUID, position int, name string) *models.MenuItem {
	item := f.Create(categoryID, position)
	item.Name = name
	return item
}

// Unavailable creates an item hidden from the public menu
func (f *MenuItemFactory) Unavailable(categoryID uuid.UUID, position int) *models.MenuItem {
	item := f.Create(categoryID, position)
	item.Available = false
	return item
}

// WithoutImage creates an item with no image reference
func (f *MenuItemFactory) WithoutImage(categoryID uuid.UUID, position int) *models.MenuItem {
	item := f.Create(categoryID, position)
	item.ImageURL = ""
	return item
}
