package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type AssistController struct {
	assistService services.AssistServiceInterface
}

func NewAssistController(assistService services.AssistServiceInterface) *AssistController {
	return &AssistController{
		assistService: assistService,
	}
}

func (ac *AssistController) EventAssistHandler(c *gin.Context) {
	var req request_models.EventAssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := ac.assistService.GenerateEventContent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Generated event content successfully")
}

func (ac *AssistController) NotificationAssistHandler(c *gin.Context) {
	var req request_models.NotificationAssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := ac.assistService.GenerateNotificationContent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Generated notification content successfully")
}

func (ac *AssistController) DescriptionAssistHandler(c *gin.Context) {
	var req request_models.DescriptionAssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := ac.assistService.GenerateDescription(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Generated description successfully")
}
