package routes

import (
	"log"

	"menu-platform-backend/internal/api/handlers"
	"menu-platform-backend/internal/api/middleware"
	"menu-platform-backend/internal/auth"
	"menu-platform-backend/internal/cdn"
	"menu-platform-backend/internal/config"
	"menu-platform-backend/internal/repository"
	"menu-platform-backend/internal/service"
	"menu-platform-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, themes config.ThemePresets) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	httpMetrics := middleware.NewHTTPMetrics()
	router.Use(httpMetrics.Handler())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db)
	adminRepo := repository.NewBusinessAdminRepository(db)
	categoryRepo := repository.NewMenuCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	resolver := tenant.NewResolver(cfg)
	menuService := service.NewMenuService(businessRepo, categoryRepo, itemRepo, resolver, themes, cfg.CurrencyCode)
	businessService := service.NewBusinessService(businessRepo, adminRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	itemService := service.NewItemService(itemRepo, categoryRepo, validator)
	dashboardService := service.NewDashboardService(categoryRepo, itemRepo)
	gateService := service.NewGateService(adminRepo, businessRepo, resolver)
	cdnClient := cdn.NewClient(cfg)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret}
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	menuHandler := handlers.NewMenuHandler(menuService)
	gateHandler := handlers.NewGateHandler(gateService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, businessService)
	itemHandler := handlers.NewItemHandler(itemService, businessService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, businessService)
	uploadHandler := handlers.NewUploadHandler(cdnClient, businessService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", middleware.MetricsEndpoint())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/oauth/start", authHandler.OAuthStart)
		authGroup.GET("/oauth/callback", authHandler.OAuthCallback)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	v1 := router.Group("/api/v1")
	{
		// Public menu routes, no authentication
		v1.GET("/menu", menuHandler.ResolveMenu)
		v1.GET("/menu/:slug", menuHandler.GetMenu)
		v1.GET("/businesses/by-slug/:slug", businessHandler.GetBusinessBySlug)

		// The gate must answer for anonymous sessions too
		v1.GET("/admin/gate", authMiddleware.OptionalAuth(), gateHandler.Evaluate)

		// Admin routes require a valid session
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			admin.POST("/business", businessHandler.Onboard)
			admin.GET("/business", businessHandler.GetBusiness)
			admin.PUT("/business", businessHandler.UpdateBusiness)

			admin.GET("/categories", categoryHandler.ListCategories)
			admin.POST("/categories", categoryHandler.CreateCategory)
			admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
			admin.POST("/categories/:id/move", categoryHandler.MoveCategory)
			admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			admin.GET("/items", itemHandler.ListItems)
			admin.POST("/items", itemHandler.CreateItem)
			admin.PUT("/items/:id", itemHandler.UpdateItem)
			admin.PATCH("/items/:id/availability", itemHandler.SetAvailability)
			admin.POST("/items/:id/move", itemHandler.MoveItem)
			admin.DELETE("/items/:id", itemHandler.DeleteItem)

			admin.GET("/dashboard", dashboardHandler.GetStats)
			admin.POST("/upload", uploadHandler.UploadImage)
		}
	}

	return router
}
