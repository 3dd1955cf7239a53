package handlers

import (
	"errors"
	"net/http"
	"strings"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// unitFromPath reads and normalizes the :bu path parameter.
func unitFromPath(c *gin.Context) (models.BusinessUnit, bool) {
	unit := models.BusinessUnit(strings.ToUpper(c.Param("bu")))
	if !unit.IsSellingUnit() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Unknown business unit.", "bu must be one of RESTAURANT, BAR, LODGING, BILLIARDS"))
		return "", false
	}
	return unit, true
}

// respondServiceError maps the service error taxonomy onto HTTP codes so
// each rejection kind stays distinguishable to the client.
func respondServiceError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrEmptyCart):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, context, err.Error()))
	case errors.Is(err, services.ErrItemNotFound), errors.Is(err, services.ErrOrderNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, context, err.Error()))
	case errors.Is(err, services.ErrInsufficientStock):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeInsufficientStock, context, err.Error()))
	case errors.Is(err, services.ErrIllegalTransition):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeIllegalTransition, context, err.Error()))
	case errors.Is(err, services.ErrAuthorizationDenied):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeAuthorizationDenied, context, err.Error()))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, context, err.Error()))
	default:
		utils.LogError(err, context)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, context, "Internal error"))
	}
}
