package handler

import (
	"net/http"

	"github.com/demianRod/alexshop-tienda/internal/apierror"
	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/middleware"
	"github.com/demianRod/alexshop-tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the user behind the current session. Clients call it on startup
// to decide whether a stored token is still a live session.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("malformed token"))
		return
	}
	resp, err := h.svc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("session no longer valid"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
