package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	infraauth "aster/internal/infrastructure/auth"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthHandler struct {
	credentials infraauth.CredentialVerifier
	jwtService  *infraauth.JWTService
	logger      logger.Interface
}

func NewAuthHandler(credentials infraauth.CredentialVerifier, jwtService *infraauth.JWTService, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      log,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.credentials.Verify(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warnw("login failed", "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	pair, err := h.jwtService.Generate(identity.UserID, identity.Email, identity.IsStaff, identity.IsAdmin)
	if err != nil {
		h.logger.Errorw("token generation failed", "user_id", identity.UserID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue tokens")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user": gin.H{
			"id":           identity.UserID,
			"email":        identity.Email,
			"display_name": identity.DisplayName,
			"is_staff":     identity.IsStaff,
			"is_admin":     identity.IsAdmin,
		},
	})
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid refresh token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":       middleware.UserID(c),
		"email":    c.GetString(middleware.ContextKeyEmail),
		"is_staff": c.GetBool(middleware.ContextKeyIsStaff),
		"is_admin": c.GetBool(middleware.ContextKeyIsAdmin),
	})
}
