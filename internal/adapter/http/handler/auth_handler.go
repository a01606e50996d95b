package handler

import (
	"tx-composer/internal/adapter/http/dto"
	"tx-composer/internal/core/ports"
	"tx-composer/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues operator tokens.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login. The token subject is the
// operator username; sessions opened with it belong to that operator.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	response.OK(c, dto.NewLoginResponse(token, expiry))
}
