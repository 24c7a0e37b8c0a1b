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

// ItemService provides menu item business logic. Item ownership is checked
// through the parent category: an item whose category belongs to another
// business is treated as not found.
type ItemService struct {
	repo         repository.MenuItemRepositoryInterface
	categoryRepo repository.MenuCategoryRepositoryInterface
	validator    *validator.Validate
}

// Ensure ItemService implements ItemServiceInterface
var _ ItemServiceInterface = (*ItemService)(nil)

// NewItemService creates a new ItemService
func NewItemService(
	repo repository.MenuItemRepositoryInterface,
	categoryRepo repository.MenuCategoryRepositoryInterface,
	validator *validator.Validate,
) *ItemService {
	return &ItemService{
		repo:         repo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// CreateItemRequest carries the fields for creating a menu item
type CreateItemRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"max=500"`
	Price       float64   `json:"price" validate:"gte=0"`
	ImageURL    string    `json:"image_url" validate:"omitempty,max=500"`
}

// UpdateItemRequest carries the mutable item fields
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
}

// ItemResponse represents a menu item in API responses
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
}

// ListByCategory returns the category's items in position order
func (s *ItemService) ListByCategory(businessID, categoryID uuid.UUID) ([]ItemResponse, error) {
	if _, err := s.scopedCategory(businessID, categoryID); err != nil {
		return nil, err
	}

	items, err := s.repo.GetByCategoryID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return toItemResponses(items), nil
}

// Create appends an item at the end of its category's display order
func (s *ItemService) Create(businessID uuid.UUID, req *CreateItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.scopedCategory(businessID, req.CategoryID); err != nil {
		return nil, err
	}

	maxPos, err := s.repo.MaxPosition(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max position: %w", err)
	}

	item := &models.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   true,
		ImageURL:    req.ImageURL,
		Position:    maxPos + 1,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	resp := toItemResponse(item)
	return &resp, nil
}

// Update applies the mutable item fields
func (s *ItemService) Update(businessID, id uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.getScoped(businessID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	resp := toItemResponse(item)
	return &resp, nil
}

// SetAvailability toggles the item on or off the public menu without
// touching its position or any other field
func (s *ItemService) SetAvailability(businessID, id uuid.UUID, available bool) (*ItemResponse, error) {
	item, err := s.getScoped(businessID, id)
	if err != nil {
		return nil, err
	}

	item.Available = available
	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	resp := toItemResponse(item)
	return &resp, nil
}

// Move swaps the item's position with its neighbor within the same
// category. Moving the first item up or the last down is a no-op.
// Returns the category's full item list in the new order.
func (s *ItemService) Move(businessID, id uuid.UUID, direction string) ([]ItemResponse, error) {
	dir := models.MoveDirection(direction)
	if !dir.IsValid() {
		return nil, apperrors.ErrInvalidMoveDirection
	}

	item, err := s.getScoped(businessID, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetByCategoryID(item.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	idx := -1
	for i := range items {
		if items[i].ID == item.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.ErrItemNotFound
	}

	var neighbor *models.MenuItem
	switch dir {
	case models.MoveUp:
		if idx > 0 {
			neighbor = &items[idx-1]
		}
	case models.MoveDown:
		if idx < len(items)-1 {
			neighbor = &items[idx+1]
		}
	}
	if neighbor == nil {
		// already at the edge
		return toItemResponses(items), nil
	}

	if err := s.repo.SwapPositions(&items[idx], neighbor); err != nil {
		return nil, fmt.Errorf("failed to swap positions: %w", err)
	}

	items, err = s.repo.GetByCategoryID(item.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return toItemResponses(items), nil
}

// Delete removes an item
func (s *ItemService) Delete(businessID, id uuid.UUID) error {
	item, err := s.getScoped(businessID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// getScoped fetches an item and verifies its category belongs to the business
func (s *ItemService) getScoped(businessID, id uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if _, err := s.scopedCategory(businessID, item.CategoryID); err != nil {
		return nil, apperrors.ErrItemNotFound
	}
	return item, nil
}

// scopedCategory verifies the category exists and belongs to the business
func (s *ItemService) scopedCategory(businessID, categoryID uuid.UUID) (*models.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
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

func toItemResponse(item *models.MenuItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		ImageURL:    item.ImageURL,
		Position:    item.Position,
	}
}

func toItemResponses(items []models.MenuItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = toItemResponse(&items[i])
	}
	return responses
}
