package v1

import (
	"errors"
	"net/http"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/internal/usecase"
	"go-diettrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/api/register", handler.Register)
	public.POST("/api/login", handler.Login)

	protected.GET("/api/profile", handler.Profile)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authSuccess struct {
	Success     bool   `json:"success"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token,omitempty"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with the hosted auth service and create the profile stub.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Credentials"
// @Success      200  {object}  authSuccess
// @Failure      400  {object}  failureEnvelope
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	res, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusOK
		if errors.Is(err, usecase.ErrSignupFailed) {
			status = http.StatusBadRequest
		}
		legacyFailure(c, status, err)
		return
	}

	c.JSON(http.StatusOK, authSuccess{Success: true, UserID: res.UserID})
}

// Login godoc
// @Summary      User Login
// @Description  Exchange email and password for the Supabase user id and access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  authSuccess
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	res, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		legacyFailure(c, http.StatusOK, err)
		return
	}

	c.JSON(http.StatusOK, authSuccess{
		Success:     true,
		UserID:      res.UserID,
		AccessToken: res.AccessToken,
	})
}

// Profile godoc
// @Summary      Current user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  response.Response
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, _ := c.Get(string(domain.KeyUserID))
	id, _ := userID.(string)

	profile, err := h.authUC.Profile(c.Request.Context(), id)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, failureEnvelope{Success: false, Message: appErr.Message})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
