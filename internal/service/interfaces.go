package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GateServiceInterface defines the interface for the admin access gate
type GateServiceInterface interface {
	Evaluate(userID uuid.UUID, hasUser bool, hostname string) *GateDecision
}

// MenuServiceInterface defines the interface for the public menu service
type MenuServiceInterface interface {
	LoadMenu(slug string) (*MenuResponse, error)
	ResolveAndLoad(hostname string) (*ResolvedMenuResponse, error)
}

// BusinessServiceInterface defines the interface for business service
type BusinessServiceInterface interface {
	Onboard(userID uuid.UUID, req *OnboardRequest) (*BusinessResponse, error)
	GetForUser(userID uuid.UUID) (*BusinessResponse, error)
	GetBySlug(slug string) (*BusinessResponse, error)
	UpdateSettings(userID uuid.UUID, req *UpdateBusinessRequest) (*BusinessResponse, error)
}

// CategoryServiceInterface defines the interface for menu category service
type CategoryServiceInterface interface {
	List(businessID uuid.UUID) ([]CategoryResponse, error)
	Create(businessID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error)
	Update(businessID, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error)
	Move(businessID, id uuid.UUID, direction string) ([]CategoryResponse, error)
	Delete(businessID, id uuid.UUID) error
}

// ItemServiceInterface defines the interface for menu item service
type ItemServiceInterface interface {
	ListByCategory(businessID, categoryID uuid.UUID) ([]ItemResponse, error)
	Create(businessID uuid.UUID, req *CreateItemRequest) (*ItemResponse, error)
	Update(businessID, id uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error)
	SetAvailability(businessID, id uuid.UUID, available bool) (*ItemResponse, error)
	Move(businessID, id uuid.UUID, direction string) ([]ItemResponse, error)
	Delete(businessID, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard aggregates
type DashboardServiceInterface interface {
	Stats(businessID uuid.UUID) (*DashboardStatsResponse, error)
}
