package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/uploader"
	"clubcentral/pkg/utils"
)

type PhotosController struct {
	photoService services.PhotoServiceInterface
	uploads      uploader.Uploader
}

func NewPhotosController(photoService services.PhotoServiceInterface, uploads uploader.Uploader) *PhotosController {
	return &PhotosController{
		photoService: photoService,
		uploads:      uploads,
	}
}

func (pc *PhotosController) ListPhotosHandler(c *gin.Context) {
	photos, err := pc.photoService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Fetched photos successfully")
}

func (pc *PhotosController) CreatePhotoHandler(c *gin.Context) {
	var req request_models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	photo, err := pc.photoService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Photo created successfully")
}

// UploadPhotoHandler takes a multipart file, pushes it to the CDN and
// stores the resulting Photo record in one request.
func (pc *PhotosController) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "photo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	defer file.Close()

	url, err := pc.uploads.UploadPhoto(c.Request.Context(), file)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, "image upload failed")
		return
	}

	req := request_models.CreatePhotoRequest{
		URL:           url,
		Description:   c.PostForm("description"),
		Hint:          c.PostForm("hint"),
		IsSliderPhoto: c.PostForm("isSliderPhoto") == "true",
	}

	photo, err := pc.photoService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Photo uploaded successfully")
}

func (pc *PhotosController) UpdatePhotoHandler(c *gin.Context) {
	var req request_models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.photoService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Photo updated successfully")
}

func (pc *PhotosController) DeletePhotoHandler(c *gin.Context) {
	if err := pc.photoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Photo deleted successfully")
}
