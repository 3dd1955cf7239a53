package router

import (
	"haveli_pos_backend/internal/handlers"
	"haveli_pos_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the per-unit menu routes. Reads are open to all
// roles; edits are for managers and up.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	menuRoutes := authenticatedGroup.Group("/units/:bu/menu")
	{
		menuRoutes.GET("", middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"), catalogHandler.GetMenu)
		menuRoutes.PUT("", middleware.RoleAuthMiddleware("Admin", "Manager"), catalogHandler.ReplaceMenu)
		menuRoutes.POST("", middleware.RoleAuthMiddleware("Admin", "Manager"), catalogHandler.UpsertItem)
		menuRoutes.PATCH("/:id/availability", middleware.RoleAuthMiddleware("Admin", "Manager"), catalogHandler.SetAvailability)
	}
}

// SetupCartRoutes sets up the per-source cart routes.
func SetupCartRoutes(authenticatedGroup *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cartRoutes := authenticatedGroup.Group("/units/:bu/carts/:source")
	cartRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"))
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/lines", cartHandler.AddLine)
		cartRoutes.DELETE("/lines/:line", cartHandler.RemoveLine)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}
}

// SetupOrderRoutes sets up the order routes. Status updates and lookups by
// id are unit-agnostic; placement and listing are scoped to a unit.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	unitOrderRoutes := authenticatedGroup.Group("/units/:bu/orders")
	unitOrderRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"))
	{
		unitOrderRoutes.POST("", orderHandler.PlaceOrder)
		unitOrderRoutes.GET("", orderHandler.GetOrders)
		unitOrderRoutes.GET("/kitchen-feed", orderHandler.KitchenFeed)
	}

	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"))
	{
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	}
}

// SetupVoiceRoutes sets up the voice order resolution route.
func SetupVoiceRoutes(authenticatedGroup *gin.RouterGroup, voiceHandler *handlers.VoiceHandler) {
	voiceRoutes := authenticatedGroup.Group("/units/:bu/voice-orders")
	voiceRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"))
	{
		voiceRoutes.POST("", voiceHandler.ResolveVoiceOrder)
	}
}

// SetupInventoryRoutes sets up the two-tier inventory routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory/:tier")
	inventoryRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager"))
	{
		inventoryRoutes.GET("", inventoryHandler.ListTier)
		inventoryRoutes.POST("", inventoryHandler.CreateItem)
		inventoryRoutes.POST("/:id/topup", inventoryHandler.TopUp)
		inventoryRoutes.POST("/:id/transfer", inventoryHandler.Transfer)
		inventoryRoutes.GET("/:id/history", inventoryHandler.History)
	}
}

// SetupSettlementRoutes sets up the shift settlement routes. Closing a
// shift is a manager action; the variance PIN gate inside the service is a
// second factor on top of the role check.
func SetupSettlementRoutes(authenticatedGroup *gin.RouterGroup, settlementHandler *handlers.SettlementHandler) {
	settlementRoutes := authenticatedGroup.Group("/units/:bu/settlement")
	{
		settlementRoutes.GET("/expected", middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"), settlementHandler.GetExpected)
		settlementRoutes.POST("/close", middleware.RoleAuthMiddleware("Admin", "Manager"), settlementHandler.CloseShift)
		settlementRoutes.GET("/history", middleware.RoleAuthMiddleware("Admin", "Manager"), settlementHandler.ListSettlements)
	}
}

// SetupStaffRoutes sets up the staff roster routes.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	authenticatedGroup.GET("/units/:bu/staff", middleware.RoleAuthMiddleware("Admin", "Manager", "Staff"), staffHandler.ListStaff)

	staffWriteRoutes := authenticatedGroup.Group("/staff")
	staffWriteRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Manager"))
	{
		staffWriteRoutes.GET("", staffHandler.ListAllStaff)
		staffWriteRoutes.POST("", staffHandler.SaveStaff)
		staffWriteRoutes.DELETE("/:id", staffHandler.DeleteStaff)
	}
}

// SetupAdminRoutes sets up the read-only cross-unit admin routes.
func SetupAdminRoutes(authenticatedGroup *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	adminRoutes := authenticatedGroup.Group("/admin")
	adminRoutes.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		adminRoutes.GET("/overview", adminHandler.GetOverview)
		adminRoutes.GET("/low-stock", adminHandler.GetLowStock)
		adminRoutes.GET("/settlements", adminHandler.GetSettlementHistory)
	}

	authenticatedGroup.GET("/units/:bu/reports/top-items", middleware.RoleAuthMiddleware("Admin", "Manager"), adminHandler.GetTopItems)
}
