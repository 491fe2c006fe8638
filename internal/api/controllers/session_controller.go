package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// SignInHandler exchanges the identity provider's profile for a session
// token carrying the resolved role.
func (sc *SessionController) SignInHandler(c *gin.Context) {
	var req request_models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := sc.sessionService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Signed in successfully")
}

func (sc *SessionController) SignOutHandler(c *gin.Context) {
	sc.sessionService.SignOut(c.GetString("session_token"))
	utils.RespondSuccess(c, nil, "Signed out successfully")
}

func (sc *SessionController) SessionHandler(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	claims, ok := v.(*utils.SessionClaims)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.RespondSuccess(c, sc.sessionService.Snapshot(claims), "Fetched session successfully")
}
