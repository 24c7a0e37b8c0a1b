package service

import (
	"menu-platform-backend/internal/logger"
	"menu-platform-backend/internal/repository"
	"menu-platform-backend/internal/tenant"

	"github.com/google/uuid"
)

// GateStatus is a terminal state of the admin access gate
type GateStatus string

const (
	GateUnauthenticated GateStatus = "unauthenticated"
	GateNoBusiness      GateStatus = "no-business"
	GateReady           GateStatus = "ready"
)

// GateDecision is the outcome of one gate evaluation: exactly one terminal
// status, plus the redirect target for the non-ready states.
type GateDecision struct {
	Status   GateStatus        `json:"status"`
	Redirect string            `json:"redirect,omitempty"`
	Business *BusinessResponse `json:"business,omitempty"`
}

// GateService decides whether the admin surface may render. It runs a
// single pass over three lookups and always lands in a terminal state;
// every lookup failure is treated as "not found" (fail closed).
type GateService struct {
	adminRepo    repository.BusinessAdminRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	resolver     *tenant.Resolver
	log          *logger.Logger
}

// Ensure GateService implements GateServiceInterface
var _ GateServiceInterface = (*GateService)(nil)

// NewGateService creates a new GateService
func NewGateService(
	adminRepo repository.BusinessAdminRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	resolver *tenant.Resolver,
) *GateService {
	return &GateService{
		adminRepo:    adminRepo,
		businessRepo: businessRepo,
		resolver:     resolver,
		log:          logger.New(),
	}
}

// Evaluate runs the gate for one request. hasUser is false when the request
// carried no (valid) session; hostname is the browser-visible host the admin
// UI was loaded from.
func (s *GateService) Evaluate(userID uuid.UUID, hasUser bool, hostname string) *GateDecision {
	// 1. session
	if !hasUser {
		return &GateDecision{Status: GateUnauthenticated, Redirect: "/login"}
	}

	// 2. business-admin linkage
	admins, err := s.adminRepo.GetByUserID(userID)
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("gate: admin lookup failed: %v", err)
		return &GateDecision{Status: GateNoBusiness, Redirect: "/onboarding"}
	}
	if len(admins) == 0 {
		return &GateDecision{Status: GateNoBusiness, Redirect: "/onboarding"}
	}

	// 3. hostname-bound tenant; keeps the admin UI off the bare root domain
	slug := s.resolver.ResolveSlug(hostname)
	if slug == "" {
		return &GateDecision{Status: GateNoBusiness, Redirect: "/onboarding"}
	}

	business, err := s.businessRepo.GetBySlug(slug)
	if err != nil {
		s.log.WithField("slug", slug).Warnf("gate: business lookup failed: %v", err)
		return &GateDecision{Status: GateNoBusiness, Redirect: "/onboarding"}
	}

	// 4. ready
	resp := toBusinessResponse(business)
	return &GateDecision{Status: GateReady, Business: &resp}
}
