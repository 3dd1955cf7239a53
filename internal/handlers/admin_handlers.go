package handlers

import (
	"net/http"
	"strconv"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the cross-unit read-only views. Nothing here mutates
// unit state.
type AdminHandler struct {
	reportService     services.ReportService
	inventoryService  services.InventoryService
	settlementService services.SettlementService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rs services.ReportService, is services.InventoryService, ss services.SettlementService) *AdminHandler {
	return &AdminHandler{reportService: rs, inventoryService: is, settlementService: ss}
}

// GetOverview returns per-unit revenue, the grand total and low-stock alerts.
func (h *AdminHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Overview())
}

// GetTopItems returns the unit's sales leaders. Accepts ?limit=N.
func (h *AdminHandler) GetTopItems(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	items, err := h.reportService.TopItems(unit, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to compute top items.")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetLowStock returns every inventory item at or below its threshold.
func (h *AdminHandler) GetLowStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventoryService.LowStock())
}

// GetSettlementHistory returns closed shift records for all selling units.
func (h *AdminHandler) GetSettlementHistory(c *gin.Context) {
	history := make(map[models.BusinessUnit][]models.ShiftSettlement)
	for _, unit := range []models.BusinessUnit{
		models.UnitRestaurant, models.UnitBar, models.UnitLodging, models.UnitBilliards,
	} {
		settlements, err := h.settlementService.ListSettlements(unit)
		if err != nil {
			respondServiceError(c, err, "Failed to fetch settlement history.")
			return
		}
		history[unit] = settlements
	}
	c.JSON(http.StatusOK, history)
}
