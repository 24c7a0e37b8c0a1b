package service

import (
	"fmt"
	"regexp"
	"strings"

	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slugPattern keeps slugs usable as subdomain labels
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// BusinessService provides business-related business logic
type BusinessService struct {
	repo      repository.BusinessRepositoryInterface
	adminRepo repository.BusinessAdminRepositoryInterface
	validator *validator.Validate
}

// Ensure BusinessService implements BusinessServiceInterface
var _ BusinessServiceInterface = (*BusinessService)(nil)

// NewBusinessService creates a new BusinessService
func NewBusinessService(
	repo repository.BusinessRepositoryInterface,
	adminRepo repository.BusinessAdminRepositoryInterface,
	validator *validator.Validate,
) *BusinessService {
	return &BusinessService{
		repo:      repo,
		adminRepo: adminRepo,
		validator: validator,
	}
}

// OnboardRequest creates a business for a freshly signed-up user
type OnboardRequest struct {
	Slug  string `json:"slug" validate:"required,min=2,max=63"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Theme string `json:"theme" validate:"omitempty,oneof=dark light warm"`
}

// UpdateBusinessRequest carries the mutable settings fields
type UpdateBusinessRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Theme        *string `json:"theme,omitempty" validate:"omitempty,oneof=dark light warm"`
	Domain       *string `json:"domain,omitempty" validate:"omitempty,fqdn,max=255"`
	LogoURL      *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Instagram    *string `json:"instagram,omitempty" validate:"omitempty,max=100"`
	OpeningHours *string `json:"opening_hours,omitempty"`
}

// BusinessResponse represents a business in API responses
type BusinessResponse struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Domain       string    `json:"domain,omitempty"`
	Theme        string    `json:"theme"`
	LogoURL      string    `json:"logo_url,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	OpeningHours string    `json:"opening_hours,omitempty"`
}

// Onboard creates the business and its owner linkage in one transaction
func (s *BusinessService) Onboard(userID uuid.UUID, req *OnboardRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, apperrors.NewValidationError("slug", "must contain only lowercase letters, digits and hyphens")
	}
	if slug == "www" {
		return nil, apperrors.NewValidationError("slug", "www is reserved")
	}

	// one business per user: a second onboarding is a conflict
	admins, err := s.adminRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin linkage: %w", err)
	}
	if len(admins) > 0 {
		return nil, apperrors.ErrBusinessAdminExists
	}

	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, apperrors.ErrBusinessExists
	}

	theme := models.Theme(req.Theme)
	if req.Theme == "" {
		theme = models.ThemeDark
	}

	business := &models.Business{
		Slug:  slug,
		Name:  req.Name,
		Theme: theme,
	}
	admin := &models.BusinessAdmin{
		UserID: userID,
		Role:   models.AdminRoleOwner,
	}

	if err := s.repo.CreateWithAdmin(business, admin); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	resp := toBusinessResponse(business)
	return &resp, nil
}

// GetForUser resolves the caller's business through their admin linkage.
// This is the session-based path: it works from any hostname.
func (s *BusinessService) GetForUser(userID uuid.UUID) (*BusinessResponse, error) {
	admins, err := s.adminRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin linkage: %w", err)
	}
	if len(admins) == 0 {
		return nil, apperrors.ErrBusinessAdminNotFound
	}

	business, err := s.repo.GetByID(admins[0].BusinessID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	resp := toBusinessResponse(business)
	return &resp, nil
}

// GetBySlug retrieves a business by its subdomain slug
func (s *BusinessService) GetBySlug(slug string) (*BusinessResponse, error) {
	business, err := s.repo.GetBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	resp := toBusinessResponse(business)
	return &resp, nil
}

// UpdateSettings applies the mutable settings fields to the caller's business
func (s *BusinessService) UpdateSettings(userID uuid.UUID, req *UpdateBusinessRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	admins, err := s.adminRepo.GetByUserID(userID)
	if err != nil || len(admins) == 0 {
		return nil, apperrors.ErrNotBusinessAdmin
	}

	business, err := s.repo.GetByID(admins[0].BusinessID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		if !theme.IsValid() {
			return nil, apperrors.ErrInvalidTheme
		}
		business.Theme = theme
	}
	if req.Domain != nil {
		// stored without a www prefix; the resolver strips it at lookup time
		business.Domain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(*req.Domain)), "www.")
	}
	if req.LogoURL != nil {
		business.LogoURL = *req.LogoURL
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Instagram != nil {
		business.Instagram = *req.Instagram
	}
	if req.OpeningHours != nil {
		business.OpeningHours = *req.OpeningHours
	}

	if err := s.repo.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	resp := toBusinessResponse(business)
	return &resp, nil
}

// toBusinessResponse converts a Business model to API response
func toBusinessResponse(b *models.Business) BusinessResponse {
	return BusinessResponse{
		ID:           b.ID,
		Slug:         b.Slug,
		Name:         b.Name,
		Domain:       b.Domain,
		Theme:        string(b.Theme),
		LogoURL:      b.LogoURL,
		Phone:        b.Phone,
		Address:      b.Address,
		Instagram:    b.Instagram,
		OpeningHours: b.OpeningHours,
	}
}
