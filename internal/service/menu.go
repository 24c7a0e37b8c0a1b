package service

import (
	"errors"
	"fmt"

	"menu-platform-backend/internal/config"
	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/logger"
	"menu-platform-backend/internal/repository"
	"menu-platform-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuService assembles the read-only public menu payload
type MenuService struct {
	businessRepo repository.BusinessRepositoryInterface
	categoryRepo repository.MenuCategoryRepositoryInterface
	itemRepo     repository.MenuItemRepositoryInterface
	resolver     *tenant.Resolver
	themes       config.ThemePresets
	currency     string
}

// Ensure MenuService implements MenuServiceInterface
var _ MenuServiceInterface = (*MenuService)(nil)

// NewMenuService creates a new MenuService
func NewMenuService(
	businessRepo repository.BusinessRepositoryInterface,
	categoryRepo repository.MenuCategoryRepositoryInterface,
	itemRepo repository.MenuItemRepositoryInterface,
	resolver *tenant.Resolver,
	themes config.ThemePresets,
	currency string,
) *MenuService {
	return &MenuService{
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		resolver:     resolver,
		themes:       themes,
		currency:     currency,
	}
}

// MenuItemView is one item on the public menu
type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
}

// MenuCategoryView is one category, with its available items in display order
type MenuCategoryView struct {
	ID       uuid.UUID      `json:"id"`
	Title    string         `json:"title"`
	Position int            `json:"position"`
	Items    []MenuItemView `json:"items"`
}

// MenuResponse is the full public menu for one business
type MenuResponse struct {
	Business   BusinessResponse   `json:"business"`
	Categories []MenuCategoryView `json:"categories"`
	Theme      config.ThemePreset `json:"theme"`
	Currency   string             `json:"currency"`
}

// ResolvedMenuResponse wraps MenuResponse with the outcome of tenant
// resolution. When no tenant is resolvable from the hostname Landing is
// true and Menu is nil; the frontend renders the landing page instead.
type ResolvedMenuResponse struct {
	Landing bool          `json:"landing"`
	Slug    string        `json:"slug,omitempty"`
	Menu    *MenuResponse `json:"menu,omitempty"`
}

// LoadMenu loads the full menu for a business by slug. Categories come back
// in position order, each with only its currently available items, also in
// position order. Categories with no available items are kept.
func (s *MenuService) LoadMenu(slug string) (*MenuResponse, error) {
	business, err := s.businessRepo.GetBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return s.buildMenu(business)
}

// buildMenu assembles the menu payload for an already resolved business
func (s *MenuService) buildMenu(business *models.Business) (*MenuResponse, error) {
	categories, err := s.categoryRepo.GetByBusinessID(business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categoryIDs := make([]uuid.UUID, len(categories))
	for i, c := range categories {
		categoryIDs[i] = c.ID
	}

	items, err := s.itemRepo.GetByCategoryIDs(categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	// single pass: items arrive ordered by position, so appending per
	// category preserves display order
	itemsByCategory := make(map[uuid.UUID][]MenuItemView, len(categories))
	for _, item := range items {
		if !item.Available {
			continue
		}
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], toMenuItemView(&item))
	}

	views := make([]MenuCategoryView, len(categories))
	for i, c := range categories {
		categoryItems := itemsByCategory[c.ID]
		if categoryItems == nil {
			categoryItems = []MenuItemView{}
		}
		views[i] = MenuCategoryView{
			ID:       c.ID,
			Title:    c.Title,
			Position: c.Position,
			Items:    categoryItems,
		}
	}

	return &MenuResponse{
		Business:   toBusinessResponse(business),
		Categories: views,
		Theme:      s.themes.Get(string(business.Theme)),
		Currency:   s.currency,
	}, nil
}

// ResolveAndLoad resolves the tenant from the request hostname and loads its
// menu. Subdomain slug resolution is tried first, then the hostname as a
// custom domain. A hostname that maps to no tenant either way yields the
// landing payload rather than an error.
func (s *MenuService) ResolveAndLoad(hostname string) (*ResolvedMenuResponse, error) {
	if slug := s.resolver.ResolveSlug(hostname); slug != "" {
		menu, err := s.LoadMenu(slug)
		if err == nil {
			return &ResolvedMenuResponse{Slug: slug, Menu: menu}, nil
		}
		if !errors.Is(err, apperrors.ErrBusinessNotFound) {
			logger.WithTenant(slug).Warnf("menu load failed: %v", err)
			return nil, err
		}
	}

	if domain := s.resolver.ResolveDomain(hostname); domain != "" {
		business, err := s.businessRepo.GetByDomain(domain)
		if err == nil {
			menu, err := s.buildMenu(business)
			if err != nil {
				return nil, err
			}
			return &ResolvedMenuResponse{Slug: business.Slug, Menu: menu}, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to get business: %w", err)
		}
	}

	return &ResolvedMenuResponse{Landing: true}, nil
}

func toMenuItemView(item *models.MenuItem) MenuItemView {
	return MenuItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		Position:    item.Position,
	}
}
