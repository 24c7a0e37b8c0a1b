package service

import (
	"fmt"

	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService provides menu category business logic. Every operation is
// scoped to a business: a category belonging to another business is treated
// as not found.
type CategoryService struct {
	repo      repository.MenuCategoryRepositoryInterface
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.MenuCategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategoryRequest carries the fields for creating a category
type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest carries the fields for renaming a category
type UpdateCategoryRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// CategoryResponse represents a menu category in API responses
type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Position int       `json:"position"`
}

// List returns the business's categories in position order
func (s *CategoryService) List(businessID uuid.UUID) ([]CategoryResponse, error) {
	categories, err := s.repo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return toCategoryResponses(categories), nil
}

// Create appends a category at the end of the business's display order
func (s *CategoryService) Create(businessID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	maxPos, err := s.repo.MaxPosition(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max position: %w", err)
	}

	category := &models.MenuCategory{
		BusinessID: businessID,
		Title:      req.Title,
		Position:   maxPos + 1,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// Update renames a category
func (s *CategoryService) Update(businessID, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.getScoped(businessID, id)
	if err != nil {
		return nil, err
	}

	category.Title = req.Title
	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// Move swaps the category's position with its neighbor in the given
// direction. Moving the first category up or the last down is a no-op.
// Returns the business's full category list in the new order.
func (s *CategoryService) Move(businessID, id uuid.UUID, direction string) ([]CategoryResponse, error) {
	dir := models.MoveDirection(direction)
	if !dir.IsValid() {
		return nil, apperrors.ErrInvalidMoveDirection
	}

	category, err := s.getScoped(businessID, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	idx := -1
	for i := range categories {
		if categories[i].ID == category.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.ErrCategoryNotFound
	}

	var neighbor *models.MenuCategory
	switch dir {
	case models.MoveUp:
		if idx > 0 {
			neighbor = &categories[idx-1]
		}
	case models.MoveDown:
		if idx < len(categories)-1 {
			neighbor = &categories[idx+1]
		}
	}
	if neighbor == nil {
		// already at the edge
		return toCategoryResponses(categories), nil
	}

	if err := s.repo.SwapPositions(&categories[idx], neighbor); err != nil {
		return nil, fmt.Errorf("failed to swap positions: %w", err)
	}

	categories, err = s.repo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return toCategoryResponses(categories), nil
}

// Delete removes a category; its items go with it via the FK cascade
func (s *CategoryService) Delete(businessID, id uuid.UUID) error {
	category, err := s.getScoped(businessID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// getScoped fetches a category and verifies it belongs to the business
func (s *CategoryService) getScoped(businessID, id uuid.UUID) (*models.MenuCategory, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category.BusinessID != businessID {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

func toCategoryResponse(c *models.MenuCategory) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Title:    c.Title,
		Position: c.Position,
	}
}

func toCategoryResponses(categories []models.MenuCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = toCategoryResponse(&categories[i])
	}
	return responses
}
