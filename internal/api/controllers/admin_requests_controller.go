package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type AdminRequestsController struct {
	adminRequestService services.AdminRequestServiceInterface
}

func NewAdminRequestsController(adminRequestService services.AdminRequestServiceInterface) *AdminRequestsController {
	return &AdminRequestsController{
		adminRequestService: adminRequestService,
	}
}

func (arc *AdminRequestsController) ListAdminRequestsHandler(c *gin.Context) {
	requests, err := arc.adminRequestService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Fetched admin requests successfully")
}

func (arc *AdminRequestsController) SubmitAdminRequestHandler(c *gin.Context) {
	var req request_models.SubmitAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	request, err := arc.adminRequestService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, request, "Admin request submitted successfully")
}

func (arc *AdminRequestsController) UpdateAdminRequestStatusHandler(c *gin.Context) {
	var req request_models.UpdateAdminRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := arc.adminRequestService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Admin request status updated successfully")
}

func (arc *AdminRequestsController) DeleteAdminRequestHandler(c *gin.Context) {
	if err := arc.adminRequestService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Admin request deleted successfully")
}
