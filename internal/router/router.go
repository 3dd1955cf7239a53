package router

import (
	"database/sql"

	"haveli_pos_backend/internal/handlers"
	"haveli_pos_backend/internal/middleware"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
)

// Setup initializes the routing for the application. db and llmModel may be
// nil: without db, settlements live in memory only; without llmModel, the
// voice resolver always answers "not understood".
func Setup(engine *gin.Engine, db *sql.DB, llmModel llms.Model, managerPIN string) {
	// Initialize Repositories
	catalogRepo := repositories.NewCatalogRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()
	inventoryRepo := repositories.NewInventoryRepository()
	staffRepo := repositories.NewStaffRepository()
	userRepo := repositories.NewUserRepository()
	archiveRepo := repositories.NewSettlementArchiveRepository(db)

	repositories.Seed(catalogRepo, inventoryRepo, staffRepo, userRepo)

	// Initialize Services
	authService := services.NewAuthService(userRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(cartRepo, catalogRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, catalogRepo, inventoryService)
	settlementService := services.NewSettlementService(orderRepo, archiveRepo, db, managerPIN)
	voiceService := services.NewVoiceOrderService(llmModel)
	staffService := services.NewStaffService(staffRepo)
	reportService := services.NewReportService(orderRepo, inventoryService)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	settlementHandler := handlers.NewSettlementHandler(settlementService)
	voiceHandler := handlers.NewVoiceHandler(voiceService, catalogService)
	staffHandler := handlers.NewStaffHandler(staffService)
	adminHandler := handlers.NewAdminHandler(reportService, inventoryService, settlementService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	publicAuth := apiV1.Group("/auth")
	publicAuth.POST("/login", authHandler.LoginUser)

	// Everything else requires a valid token.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.GET("/auth/me", authHandler.GetCurrentUser)

		SetupCatalogRoutes(authenticated, catalogHandler)
		SetupCartRoutes(authenticated, cartHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupVoiceRoutes(authenticated, voiceHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupSettlementRoutes(authenticated, settlementHandler)
		SetupStaffRoutes(authenticated, staffHandler)
		SetupAdminRoutes(authenticated, adminHandler)
	}
}
