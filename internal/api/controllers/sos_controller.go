package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type SOSController struct {
	sosService services.SOSServiceInterface
}

func NewSOSController(sosService services.SOSServiceInterface) *SOSController {
	return &SOSController{
		sosService: sosService,
	}
}

// RaiseSOS godoc
// @Summary Raise an SOS event
// @Description Create an SOS event with an optional trailing location list
// @Tags SOS
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/sos [post]
func (s *SOSController) RaiseSOS(c *gin.Context) {
	var req request_models.SOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	created, err := s.sosService.RaiseSOS(c.Request.Context(), id, c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "SOS raised")
}

// UploadAudio godoc
// @Summary Attach an audio recording to an SOS event
// @Tags SOS
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/sos/{id}/audio [post]
func (s *SOSController) UploadAudio(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil || file == nil {
		utils.RespondError(c, http.StatusBadRequest, "Audio file missing")
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable audio upload")
		return
	}
	defer f.Close()

	attached, err := s.sosService.AttachAudio(
		c.Request.Context(),
		c.Param("id"),
		id,
		file.Filename,
		f,
		file.Size,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attached, "Audio attached")
}

// ActiveSOS godoc
// @Summary List open SOS events
// @Description Police feed of active events with last known positions
// @Tags SOS
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /police/api/active_sos [get]
func (s *SOSController) ActiveSOS(c *gin.Context) {
	events, err := s.sosService.ListActive(c.Request.Context(), c.GetString("Role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"events": events}, "Active SOS events fetched")
}
