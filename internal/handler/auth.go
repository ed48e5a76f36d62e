package handler

import (
	"context"

	"github.com/forumhub/backend/internal/model"
	"github.com/forumhub/backend/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type authService interface {
	Login(ctx context.Context, username string) (*service.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	CookieConfig() service.CookieConfig
}

type AuthHandler struct {
	svc authService
	log *zap.Logger
}

func NewAuthHandler(svc authService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Login godoc
// @Summary Login by username
// @Description Returns an access token and sets the refresh_token cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username"
// @Success 200 {object} model.Envelope{data=model.LoginData}
// @Failure 400 {object} model.Envelope
// @Failure 429 {object} model.Envelope
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Username)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, res.Tokens.RefreshToken)
	respondOK(c, "Login successful", model.LoginData{
		AccessToken: res.Tokens.AccessToken,
		User:        res.User,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Uses the refresh_token cookie and rotates it.
// @Tags users
// @Produce json
// @Success 200 {object} model.Envelope{data=model.RefreshData}
// @Failure 401 {object} model.Envelope
// @Router /users/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.svc.CookieConfig().Name)
	pair, err := h.svc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	respondOK(c, "refresh token successful", model.RefreshData{AccessToken: pair.AccessToken})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	cfg := h.svc.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, token, cfg.MaxAge, cfg.Path, "", cfg.Secure, true)
}
