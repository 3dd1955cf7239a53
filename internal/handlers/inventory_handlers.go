package handlers

import (
	"net/http"
	"strings"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

func tierFromPath(c *gin.Context) (models.InventoryTier, bool) {
	tier := models.InventoryTier(strings.ToUpper(c.Param("tier")))
	if !models.ValidInventoryTier(tier) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Unknown inventory tier.", "tier must be RAW or KITCHEN"))
		return "", false
	}
	return tier, true
}

// ListTier returns all items in a tier.
func (h *InventoryHandler) ListTier(c *gin.Context) {
	tier, ok := tierFromPath(c)
	if !ok {
		return
	}
	items, err := h.inventoryService.ListTier(tier)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch inventory.")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem inserts a new tracked consumable.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	tier, ok := tierFromPath(c)
	if !ok {
		return
	}
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	item, err := h.inventoryService.Create(tier, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create inventory item.")
		return
	}
	c.JSON(http.StatusCreated, item)
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TopUp adds stock to an item.
func (h *InventoryHandler) TopUp(c *gin.Context) {
	tier, ok := tierFromPath(c)
	if !ok {
		return
	}
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "amount is required")
		return
	}
	item, err := h.inventoryService.TopUp(tier, c.Param("id"), req.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to top up inventory item.")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Transfer moves stock from this tier to the other by item name.
func (h *InventoryHandler) Transfer(c *gin.Context) {
	tier, ok := tierFromPath(c)
	if !ok {
		return
	}
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "amount is required")
		return
	}
	if err := h.inventoryService.Transfer(tier, c.Param("id"), req.Amount); err != nil {
		respondServiceError(c, err, "Failed to transfer stock.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transferred": req.Amount})
}

// History returns the item's audit log, most recent first.
func (h *InventoryHandler) History(c *gin.Context) {
	tier, ok := tierFromPath(c)
	if !ok {
		return
	}
	history, err := h.inventoryService.History(tier, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch inventory history.")
		return
	}
	c.JSON(http.StatusOK, history)
}
