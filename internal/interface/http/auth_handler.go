package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-service/internal/application"
	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/interface/middleware"
	"github.com/oksasatya/go-auth-service/pkg/response"
	"github.com/oksasatya/go-auth-service/pkg/validation"
)

// AuthHandler exposes the credential workflow over HTTP. It maps each
// domain error onto its transport status code and passes everything
// else through as a 500; the workflow itself never logs or swallows.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenPayload struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if _, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "user registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	tokens, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, tokenPayload{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, "login successful")
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	tokens, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, tokenPayload{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, "token refreshed")
}

// GetProfile handles GET /api/auth/profile. The Bearer token was already
// verified by the auth middleware; the user id comes from its claims.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	profile, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":    profile.ID,
		"email": profile.Email,
	}, "profile")
}

// Health handles GET /api/health.
func (h *AuthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
}

// fail maps domain errors to transport status codes.
func (h *AuthHandler) fail(c *gin.Context, err error) {
	var weak *entity.WeakPasswordError
	switch {
	case errors.Is(err, entity.ErrInvalidEmail):
		response.Error[any](c, http.StatusBadRequest, "invalid email", err.Error())
	case errors.As(err, &weak):
		response.Error[any](c, http.StatusBadRequest, "weak password", weak.Reason)
	case errors.Is(err, entity.ErrUserAlreadyExists):
		response.Error[any](c, http.StatusConflict, "user already exists", nil)
	case errors.Is(err, entity.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, entity.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("auth operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
