package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
	"github.com/yungbote/aedb-backend/internal/http/schema"
	"github.com/yungbote/aedb-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (ah *AuthHandler) Register(c *gin.Context) {
	var req schema.RegisterSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	req = req.Normalized()
	user, err := ah.authService.RegisterUser(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.UserFromModel(user))
}

// POST /auth/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req schema.LoginSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	accessToken, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	expiresIn := int64(ah.authService.GetAccessTTL().Seconds())
	response.RespondOK(c, schema.BearerToken(accessToken, expiresIn))
}

// GET /auth/me
func (ah *AuthHandler) Me(c *gin.Context) {
	user, err := ah.authService.CurrentUser(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.UserFromModel(user))
}
