package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SettlementHandler holds the settlement service.
type SettlementHandler struct {
	settlementService services.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(ss services.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: ss}
}

// GetExpected returns the reconciliation baseline for the open session.
func (h *SettlementHandler) GetExpected(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	totals, err := h.settlementService.ComputeExpected(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to compute expected totals.")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// CloseShift reconciles counted cash and closes the unit's session. A
// variance needs the manager PIN plus a reason in the same request.
func (h *SettlementHandler) CloseShift(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var req services.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	settlement, err := h.settlementService.CloseShift(unit, req)
	if err != nil {
		respondServiceError(c, err, "Failed to close shift.")
		return
	}
	c.JSON(http.StatusCreated, settlement)
}

// ListSettlements returns the unit's closed shift records.
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	settlements, err := h.settlementService.ListSettlements(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch settlements.")
		return
	}
	c.JSON(http.StatusOK, settlements)
}
