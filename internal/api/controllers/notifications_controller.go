package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type NotificationsController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationsController(notificationService services.NotificationServiceInterface) *NotificationsController {
	return &NotificationsController{
		notificationService: notificationService,
	}
}

func (nc *NotificationsController) ListNotificationsHandler(c *gin.Context) {
	notifications, err := nc.notificationService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Fetched notifications successfully")
}

func (nc *NotificationsController) CreateNotificationHandler(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	notification, err := nc.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, notification, "Notification created successfully")
}

func (nc *NotificationsController) UpdateNotificationHandler(c *gin.Context) {
	var req request_models.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := nc.notificationService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification updated successfully")
}

func (nc *NotificationsController) DeleteNotificationHandler(c *gin.Context) {
	if err := nc.notificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted successfully")
}
