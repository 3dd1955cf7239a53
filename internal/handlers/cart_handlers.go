package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler holds the cart service.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// GetCart returns the in-progress cart for one table/room/tab.
func (h *CartHandler) GetCart(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	cart, err := h.cartService.GetCart(unit, c.Param("source"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch cart.")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddLine adds (or merges) an item selection into the cart.
func (h *CartHandler) AddLine(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var req services.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	cart, err := h.cartService.AddLine(unit, c.Param("source"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add cart line.")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveLine removes a line under the policy the caller names: DELETE drops
// the line, DECREMENT steps the quantity down by one.
func (h *CartHandler) RemoveLine(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	policy := models.RemovePolicy(c.DefaultQuery("policy", string(models.RemoveDelete)))
	cart, err := h.cartService.RemoveLine(unit, c.Param("source"), c.Param("line"), policy)
	if err != nil {
		respondServiceError(c, err, "Failed to remove cart line.")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart empties the cart without placing an order.
func (h *CartHandler) ClearCart(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	h.cartService.ClearCart(unit, c.Param("source"))
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
