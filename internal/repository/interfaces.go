package repository

import (
	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BusinessRepositoryInterface defines the interface for business repository operations
type BusinessRepositoryInterface interface {
	Create(business *models.Business) error
	CreateWithAdmin(business *models.Business, admin *models.BusinessAdmin) error
	GetByID(id uuid.UUID) (*models.Business, error)
	GetBySlug(slug string) (*models.Business, error)
	GetByDomain(domain string) (*models.Business, error)
	Update(business *models.Business) error
	Delete(id uuid.UUID) error
}

// BusinessAdminRepositoryInterface defines the interface for business-admin linkage operations
type BusinessAdminRepositoryInterface interface {
	Create(admin *models.BusinessAdmin) error
	GetByUserID(userID uuid.UUID) ([]models.BusinessAdmin, error)
	Delete(id uuid.UUID) error
}

// MenuCategoryRepositoryInterface defines the interface for menu category repository operations
type MenuCategoryRepositoryInterface interface {
	Create(category *models.MenuCategory) error
	GetByID(id uuid.UUID) (*models.MenuCategory, error)
	GetByBusinessID(businessID uuid.UUID) ([]models.MenuCategory, error)
	MaxPosition(businessID uuid.UUID) (int, error)
	Update(category *models.MenuCategory) error
	SwapPositions(a, b *models.MenuCategory) error
	Delete(id uuid.UUID) error
	CountByBusiness(businessID uuid.UUID) (int64, error)
}

// MenuItemRepositoryInterface defines the interface for menu item repository operations
type MenuItemRepositoryInterface interface {
	Create(item *models.MenuItem) error
	GetByID(id uuid.UUID) (*models.MenuItem, error)
	GetByCategoryID(categoryID uuid.UUID) ([]models.MenuItem, error)
	GetByCategoryIDs(categoryIDs []uuid.UUID) ([]models.MenuItem, error)
	MaxPosition(categoryID uuid.UUID) (int, error)
	Update(item *models.MenuItem) error
	SwapPositions(a, b *models.MenuItem) error
	Delete(id uuid.UUID) error
	CountByBusiness(businessID uuid.UUID) (int64, error)
	CountMissingImageByBusiness(businessID uuid.UUID) (int64, error)
	CountUnavailableByBusiness(businessID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}
