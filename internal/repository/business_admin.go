package repository

import (
	"menu-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessAdminRepository handles database operations for the user→business linkage
type BusinessAdminRepository struct {
	db *gorm.DB
}

// Ensure BusinessAdminRepository implements BusinessAdminRepositoryInterface
var _ BusinessAdminRepositoryInterface = (*BusinessAdminRepository)(nil)

// NewBusinessAdminRepository creates a new business admin repository
func NewBusinessAdminRepository(db *gorm.DB) *BusinessAdminRepository {
	return &BusinessAdminRepository{db: db}
}

// Create creates a new business admin linkage
func (r *BusinessAdminRepository) Create(admin *models.BusinessAdmin) error {
	return r.db.Create(admin).Error
}

// GetByUserID retrieves all business admin rows for a user
func (r *BusinessAdminRepository) GetByUserID(userID uuid.UUID) ([]models.BusinessAdmin, error) {
	var admins []models.BusinessAdmin
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// Delete deletes a business admin linkage
func (r *BusinessAdminRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BusinessAdmin{}, "id = ?", id).Error
}
