package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// PlaceOrder submits the named source's cart as an order.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	order, err := h.orderService.PlaceOrder(unit, req)
	if err != nil {
		respondServiceError(c, err, "Failed to place order.")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders lists the unit's current session orders with display fields.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	orders, err := h.orderService.GetOrders(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch orders.")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns one order snapshot.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus drives the kitchen display state machine.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "status is required")
		return
	}
	order, err := h.orderService.AdvanceStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update order status.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// KitchenFeed lists open kitchen-routed orders for the prep display.
func (h *OrderHandler) KitchenFeed(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	feed, err := h.orderService.KitchenFeed(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch kitchen feed.")
		return
	}
	c.JSON(http.StatusOK, feed)
}
