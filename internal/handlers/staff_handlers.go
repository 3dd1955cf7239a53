package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler holds the staff service.
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// ListStaff returns the unit's roster.
func (h *StaffHandler) ListStaff(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.staffService.List(unit))
}

// ListAllStaff returns the roster across every unit.
func (h *StaffHandler) ListAllStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.staffService.ListAll())
}

// SaveStaff creates or updates a roster entry.
func (h *StaffHandler) SaveStaff(c *gin.Context) {
	var member models.StaffMember
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	saved, err := h.staffService.Save(member)
	if err != nil {
		respondServiceError(c, err, "Failed to save staff member.")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteStaff removes a roster entry by id.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if err := h.staffService.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete staff member.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
