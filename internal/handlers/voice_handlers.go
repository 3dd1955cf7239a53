package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VoiceHandler holds the voice order resolver and the catalog it resolves
// against.
type VoiceHandler struct {
	voiceService   services.VoiceOrderService
	catalogService services.CatalogService
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(vs services.VoiceOrderService, cs services.CatalogService) *VoiceHandler {
	return &VoiceHandler{voiceService: vs, catalogService: cs}
}

type resolveVoiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type resolveVoiceResponse struct {
	Items []services.ResolvedLine `json:"items"`
	// Understood is false when no menu item could be extracted, letting
	// the client play its "didn't catch that" feedback.
	Understood bool `json:"understood"`
}

// ResolveVoiceOrder maps a spoken transcript to items on the unit's current
// menu. It never fails on resolver trouble; an uninterpretable transcript
// comes back as an empty, not-understood payload.
func (h *VoiceHandler) ResolveVoiceOrder(c *gin.Context) {
	unit, ok := unitFromPath(c)
	if !ok {
		return
	}
	var req resolveVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	menu, err := h.catalogService.GetMenu(unit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch menu for voice resolution.")
		return
	}

	lines := h.voiceService.Resolve(c.Request.Context(), req.Transcript, menu)
	c.JSON(http.StatusOK, resolveVoiceResponse{
		Items:      lines,
		Understood: len(lines) > 0,
	})
}
