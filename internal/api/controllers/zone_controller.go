package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type ZoneController struct {
	zoneService services.ZoneServiceInterface
}

func NewZoneController(zoneService services.ZoneServiceInterface) *ZoneController {
	return &ZoneController{
		zoneService: zoneService,
	}
}

// CreateZone godoc
// @Summary Create a danger zone
// @Tags Zones
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dangerzones [post]
func (z *ZoneController) CreateZone(c *gin.Context) {
	var req request_models.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	zone, err := z.zoneService.CreateZone(c.Request.Context(), c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, zone, "Danger zone created")
}

// UpdateZone godoc
// @Summary Edit a danger zone
// @Tags Zones
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dangerzones/{id} [put]
func (z *ZoneController) UpdateZone(c *gin.Context) {
	var req request_models.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	zone, err := z.zoneService.UpdateZone(c.Request.Context(), c.GetString("Role"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, zone, "Danger zone updated")
}

// DeleteZone godoc
// @Summary Delete a danger zone
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dangerzones/{id} [delete]
func (z *ZoneController) DeleteZone(c *gin.Context) {
	if err := z.zoneService.DeleteZone(c.Request.Context(), c.GetString("Role"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Danger zone deleted")
}

// ListZones godoc
// @Summary List danger zones
// @Description Zones for the map overlay; any authenticated caller
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/zones [get]
func (z *ZoneController) ListZones(c *gin.Context) {
	zones, err := z.zoneService.ListZones(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"zones": zones}, "Danger zones fetched")
}
