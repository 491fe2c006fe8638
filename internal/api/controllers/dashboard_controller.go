package controllers

import (
	"github.com/gin-gonic/gin"

	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (dc *DashboardController) ReportHandler(c *gin.Context) {
	report, err := dc.dashboardService.BuildReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched dashboard report successfully")
}
