package service

import (
	"fmt"

	"menu-platform-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService computes the admin dashboard aggregates
type DashboardService struct {
	categoryRepo repository.MenuCategoryRepositoryInterface
	itemRepo     repository.MenuItemRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	categoryRepo repository.MenuCategoryRepositoryInterface,
	itemRepo repository.MenuItemRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// DashboardStatsResponse holds the menu health counters shown on the
// admin dashboard
type DashboardStatsResponse struct {
	TotalCategories  int64 `json:"total_categories"`
	TotalItems       int64 `json:"total_items"`
	MissingImage     int64 `json:"missing_image"`
	UnavailableItems int64 `json:"unavailable_items"`
}

// Stats counts the business's categories and items, plus the items that
// need attention: missing an image or hidden from the public menu
func (s *DashboardService) Stats(businessID uuid.UUID) (*DashboardStatsResponse, error) {
	totalCategories, err := s.categoryRepo.CountByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	totalItems, err := s.itemRepo.CountByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	missingImage, err := s.itemRepo.CountMissingImageByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to count items without image: %w", err)
	}

	unavailable, err := s.itemRepo.CountUnavailableByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unavailable items: %w", err)
	}

	return &DashboardStatsResponse{
		TotalCategories:  totalCategories,
		TotalItems:       totalItems,
		MissingImage:     missingImage,
		UnavailableItems: unavailable,
	}, nil
}
