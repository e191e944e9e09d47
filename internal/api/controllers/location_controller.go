package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
}

func NewLocationController(locationService services.LocationServiceInterface) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid caller identity")
		return uuid.Nil, false
	}
	return id, true
}

// PostLocation godoc
// @Summary Report a position
// @Description Persist one GPS report; response carries a zone alert when applicable
// @Tags Locations
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/location [post]
func (l *LocationController) PostLocation(c *gin.Context) {
	var req request_models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	ack, err := l.locationService.RecordLocation(c.Request.Context(), id, c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Location recorded")
}

// UpdateLocation serves the legacy polling client, which posts form fields
// lat/lon every 30 seconds. Same validation, same ingest path.
func (l *LocationController) UpdateLocation(c *gin.Context) {
	var req request_models.LocationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	ack, err := l.locationService.RecordLocation(c.Request.Context(), id, c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ack, "Location recorded")
}
