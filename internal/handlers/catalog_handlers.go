package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetMenu returns a unit's full menu snapshot.
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	menu, err := h.catalogService.GetMenu(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch menu.")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// ReplaceMenu substitutes a unit's whole item set.
func (h *CatalogHandler) ReplaceMenu(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var items []models.MenuItem
	if err := c.ShouldBindJSON(&items); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.catalogService.ReplaceMenu(unit, items); err != nil {
		respondServiceError(c, err, "Failed to replace menu.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"replaced": len(items)})
}

// UpsertItem creates or overwrites a single menu item.
func (h *CatalogHandler) UpsertItem(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	saved, err := h.catalogService.UpsertItem(unit, item)
	if err != nil {
		respondServiceError(c, err, "Failed to save menu item.")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SetAvailability toggles an item on or off the menu. There is no delete;
// retired items go unavailable so order history stays resolvable.
func (h *CatalogHandler) SetAvailability(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "is_available is required")
		return
	}
	item, err := h.catalogService.SetAvailability(unit, c.Param("id"), *req.IsAvailable)
	if err != nil {
		respondServiceError(c, err, "Failed to update availability.")
		return
	}
	c.JSON(http.StatusOK, item)
}
