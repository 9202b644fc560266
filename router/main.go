package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/database"
	"github.com/uniscout/uniscout-api/handlers"
	admissioncycle_handlers "github.com/uniscout/uniscout-api/handlers/admissioncycle"
	auth_handlers "github.com/uniscout/uniscout-api/handlers/auth"
	catalog_handlers "github.com/uniscout/uniscout-api/handlers/catalog"
	institution_handlers "github.com/uniscout/uniscout-api/handlers/institution"
	savedschool_handlers "github.com/uniscout/uniscout-api/handlers/savedschool"
	"github.com/uniscout/uniscout-api/services"
	"github.com/uniscout/uniscout-api/utils/auth"
	"github.com/uniscout/uniscout-api/utils/cache"
	"github.com/uniscout/uniscout-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "uniscout-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        24 * time.Hour,     // Access token expires in 24 hours
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection and metadata caching
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and metadata caching will be disabled.", err)
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware with DB for blacklist checking
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize services
	searchService := services.NewInstitutionSearchService(db)
	metadataService := services.NewMetadataService(db, redisCache)
	savedSchoolService := services.NewSavedSchoolService(db)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	institutionHandler := institution_handlers.NewInstitutionHandler(db, searchService, metadataService)
	admissionCycleHandler := admissioncycle_handlers.NewAdmissionCycleHandler(db)
	savedSchoolHandler := savedschool_handlers.NewSavedSchoolHandler(savedSchoolService)
	catalogHandler := catalog_handlers.NewCatalogHandler(metadataService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error { return handlers.HandleCheckHealth(c, store) })

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected auth routes
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Post("/logout-all", authMiddleware.Required(), authHandler.LogoutAll)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.GetProfile)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Institutions routes
	institutions := api.Group("/institutions")
	institutions.Get("/", institutionHandler.Search)                                           // Public: Search institutions
	institutions.Get("/:id", institutionHandler.Get)                                           // Public: Get institution by ID
	institutions.Post("/", authMiddleware.RequireAdmin(), institutionHandler.Create)           // Admin only: Create institution
	institutions.Put("/:id", authMiddleware.RequireAdmin(), institutionHandler.Update)         // Admin only: Update institution
	institutions.Delete("/:id", authMiddleware.RequireAdmin(), institutionHandler.Delete)      // Admin only: Delete institution

	// Admission cycle routes
	admissionCycles := api.Group("/admission-cycles")
	admissionCycles.Get("/", admissionCycleHandler.List)    // Public: List admission cycles
	admissionCycles.Get("/:id", admissionCycleHandler.Get)  // Public: Get admission cycle by ID

	// Saved schools routes (all protected - require authentication)
	savedSchools := api.Group("/saved-schools", authMiddleware.Required())
	savedSchools.Get("/", savedSchoolHandler.List)           // Protected: List saved schools
	savedSchools.Post("/", savedSchoolHandler.Create)        // Protected: Save a school
	savedSchools.Post("/toggle", savedSchoolHandler.Toggle)  // Protected: Toggle saved state
	savedSchools.Get("/:id", savedSchoolHandler.Get)         // Protected: Get saved school
	savedSchools.Put("/:id", savedSchoolHandler.Update)      // Protected: Update notes/tags
	savedSchools.Delete("/:id", savedSchoolHandler.Delete)   // Protected: Remove saved school

	// Catalog routes (public, cacheable)
	api.Get("/search-metadata", catalogHandler.SearchMetadata)
	api.Get("/popular-majors", catalogHandler.PopularMajors)
	api.Get("/international-documents", catalogHandler.InternationalDocuments)
	api.Get("/states", catalogHandler.States)
	api.Get("/cities", catalogHandler.Cities)
	api.Get("/locales", catalogHandler.Locales)
}
