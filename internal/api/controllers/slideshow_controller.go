package controllers

import (
	"github.com/gin-gonic/gin"

	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type SlideshowController struct {
	slideshowService services.SlideshowServiceInterface
}

func NewSlideshowController(slideshowService services.SlideshowServiceInterface) *SlideshowController {
	return &SlideshowController{
		slideshowService: slideshowService,
	}
}

func (sc *SlideshowController) FeedHandler(c *gin.Context) {
	slides, err := sc.slideshowService.BuildFeed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, slides, "Fetched slideshow feed successfully")
}
