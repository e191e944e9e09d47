package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// DownloadFIR godoc
// @Summary Download the FIR PDF for an SOS event
// @Tags Reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /police/fir/{id}/pdf [get]
func (r *ReportController) DownloadFIR(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	filename, pdfBytes, err := r.reportService.BuildFIR(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdfBytes)
}
