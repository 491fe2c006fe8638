package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type EventsController struct {
	eventService services.EventServiceInterface
}

func NewEventsController(eventService services.EventServiceInterface) *EventsController {
	return &EventsController{
		eventService: eventService,
	}
}

func (ec *EventsController) ListEventsHandler(c *gin.Context) {
	events, err := ec.eventService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Fetched events successfully")
}

func (ec *EventsController) CreateEventHandler(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := ec.eventService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

func (ec *EventsController) UpdateEventHandler(c *gin.Context) {
	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ec.eventService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event updated successfully")
}

func (ec *EventsController) DeleteEventHandler(c *gin.Context) {
	if err := ec.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
