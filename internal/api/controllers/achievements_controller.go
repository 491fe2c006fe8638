package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type AchievementsController struct {
	achievementService services.AchievementServiceInterface
}

func NewAchievementsController(achievementService services.AchievementServiceInterface) *AchievementsController {
	return &AchievementsController{
		achievementService: achievementService,
	}
}

func (ac *AchievementsController) ListAchievementsHandler(c *gin.Context) {
	achievements, err := ac.achievementService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, achievements, "Fetched achievements successfully")
}

func (ac *AchievementsController) CreateAchievementHandler(c *gin.Context) {
	var req request_models.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	achievement, err := ac.achievementService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, achievement, "Achievement created successfully")
}

func (ac *AchievementsController) UpdateAchievementHandler(c *gin.Context) {
	var req request_models.UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.achievementService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Achievement updated successfully")
}

func (ac *AchievementsController) DeleteAchievementHandler(c *gin.Context) {
	if err := ac.achievementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Achievement deleted successfully")
}
