package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type MembersController struct {
	memberService services.MemberServiceInterface
}

func NewMembersController(memberService services.MemberServiceInterface) *MembersController {
	return &MembersController{
		memberService: memberService,
	}
}

func (mc *MembersController) ListMembersHandler(c *gin.Context) {
	members, err := mc.memberService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Fetched members successfully")
}

func (mc *MembersController) CreateMemberHandler(c *gin.Context) {
	var req request_models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := mc.memberService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Member created successfully")
}

func (mc *MembersController) UpdateMemberHandler(c *gin.Context) {
	var req request_models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := mc.memberService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member updated successfully")
}

func (mc *MembersController) DeleteMemberHandler(c *gin.Context) {
	if err := mc.memberService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member deleted successfully")
}
