package repository

import (
	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategoryRepository handles database operations for menu categories
type MenuCategoryRepository struct {
	db *gorm.DB
}

// Ensure MenuCategoryRepository implements MenuCategoryRepositoryInterface
var _ MenuCategoryRepositoryInterface = (*MenuCategoryRepository)(nil)

// NewMenuCategoryRepository creates a new menu category repository
func NewMenuCategoryRepository(db *gorm.DB) *MenuCategoryRepository {
	return &MenuCategoryRepository{db: db}
}

// Create creates a new menu category
func (r *MenuCategoryRepository) Create(category *models.MenuCategory) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a menu category by ID
func (r *MenuCategoryRepository) GetByID(id uuid.UUID) (*models.MenuCategory, error) {
	var category models.MenuCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByBusinessID retrieves all categories of a business ordered by position ascending
func (r *MenuCategoryRepository) GetByBusinessID(businessID uuid.UUID) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.Where("business_id = ?", businessID).Order("position ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// MaxPosition returns the highest position in use for a business, 0 when empty
func (r *MenuCategoryRepository) MaxPosition(businessID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.MenuCategory{}).
		Where("business_id = ?", businessID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Update updates a menu category
func (r *MenuCategoryRepository) Update(category *models.MenuCategory) error {
	return r.db.Save(category).Error
}

// SwapPositions exchanges the positions of two categories in one transaction,
// so the positions stay a permutation even if the process dies mid-swap.
func (r *MenuCategoryRepository) SwapPositions(a, b *models.MenuCategory) error {
	posA, posB := a.Position, b.Position
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Park one row on a sentinel first; position is unique per business.
		if err := tx.Model(&models.MenuCategory{}).Where("id = ?", a.ID).
			Update("position", -1).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MenuCategory{}).Where("id = ?", b.ID).
			Update("position", posA).Error; err != nil {
			return err
		}
		return tx.Model(&models.MenuCategory{}).Where("id = ?", a.ID).
			Update("position", posB).Error
	})
	if err != nil {
		return err
	}
	a.Position, b.Position = posB, posA
	return nil
}

// Delete deletes a menu category (items cascade)
func (r *MenuCategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MenuCategory{}, "id = ?", id).Error
}

// CountByBusiness counts the categories of a business
func (r *MenuCategoryRepository) CountByBusiness(businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuCategory{}).Where("business_id = ?", businessID).Count(&count).Error
	return count, err
}
