package repository

import (
	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct {
	db *gorm.DB
}

// Ensure BusinessRepository implements BusinessRepositoryInterface
var _ BusinessRepositoryInterface = (*BusinessRepository)(nil)

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// CreateWithAdmin creates a business together with its owner linkage in one
// transaction. Used by onboarding so a business never exists without an admin.
func (r *BusinessRepository) CreateWithAdmin(business *models.Business, admin *models.BusinessAdmin) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(business).Error; err != nil {
			return err
		}
		admin.BusinessID = business.ID
		return tx.Create(admin).Error
	})
}

// GetByID retrieves a business by ID
func (r *BusinessRepository) GetByID(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetBySlug retrieves a business by its subdomain slug
func (r *BusinessRepository) GetBySlug(slug string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByDomain retrieves a business by its custom domain
func (r *BusinessRepository) GetByDomain(domain string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "domain = ?", domain).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Update updates a business
func (r *BusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete deletes a business
func (r *BusinessRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Business{}, "id = ?", id).Error
}
