package repository

import (
	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemRepository handles database operations for menu items
type MenuItemRepository struct {
	db *gorm.DB
}

// Ensure MenuItemRepository implements MenuItemRepositoryInterface
var _ MenuItemRepositoryInterface = (*MenuItemRepository)(nil)

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// Create creates a new menu item
func (r *MenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a menu item by ID
func (r *MenuItemRepository) GetByID(id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByCategoryID retrieves all items of a category ordered by position ascending
func (r *MenuItemRepository) GetByCategoryID(categoryID uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ?", categoryID).Order("position ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByCategoryIDs retrieves the items of several categories in one query,
// ordered by position ascending. Used by the public menu load.
func (r *MenuItemRepository) GetByCategoryIDs(categoryIDs []uuid.UUID) ([]models.MenuItem, error) {
	if len(categoryIDs) == 0 {
		return []models.MenuItem{}, nil
	}
	var items []models.MenuItem
	err := r.db.Where("category_id IN ?", categoryIDs).Order("position ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MaxPosition returns the highest position in use within a category, 0 when empty
func (r *MenuItemRepository) MaxPosition(categoryID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.MenuItem{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Update updates a menu item
func (r *MenuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// SwapPositions exchanges the positions of two items in one transaction
func (r *MenuItemRepository) SwapPositions(a, b *models.MenuItem) error {
	posA, posB := a.Position, b.Position
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuItem{}).Where("id = ?", a.ID).
			Update("position", posB).Error; err != nil {
			return err
		}
		return tx.Model(&models.MenuItem{}).Where("id = ?", b.ID).
			Update("position", posA).Error
	})
	if err != nil {
		return err
	}
	a.Position, b.Position = posB, posA
	return nil
}

// Delete deletes a menu item
func (r *MenuItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *MenuItemRepository) businessItems(businessID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.MenuItem{}).
		Joins("JOIN menu_categories ON menu_categories.id = menu_items.category_id").
		Where("menu_categories.business_id = ?", businessID)
}

// CountByBusiness counts all items across a business's categories
func (r *MenuItemRepository) CountByBusiness(businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.businessItems(businessID).Count(&count).Error
	return count, err
}

// CountMissingImageByBusiness counts items without an uploaded image
func (r *MenuItemRepository) CountMissingImageByBusiness(businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.businessItems(businessID).
		Where("menu_items.image_url = '' OR menu_items.image_url IS NULL").
		Count(&count).Error
	return count, err
}

// CountUnavailableByBusiness counts items currently marked unavailable
func (r *MenuItemRepository) CountUnavailableByBusiness(businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.businessItems(businessID).
		Where("menu_items.available = false").
		Count(&count).Error
	return count, err
}
