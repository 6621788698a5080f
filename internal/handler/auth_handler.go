package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/middleware"
	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/response"
	"github.com/classora/classora-backend/internal/service"
	"github.com/classora/classora-backend/internal/validator"
)

// tokenCookieMaxAge keeps the cookie alive for 7 days.
const tokenCookieMaxAge = 7 * 24 * 60 * 60

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login godoc
// POST /auth/login
// Authenticates within a tenant (by tenant_id or tenant_slug), returns the
// token and user, and mirrors the token into an http-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), service.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		TenantID:   req.TenantID,
		TenantSlug: req.TenantSlug,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, result.Token, tokenCookieMaxAge, "/", "", h.cfg.CookieSecure, true)

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// GET /auth/me
// Returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Missing token")
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"user": user})
}
