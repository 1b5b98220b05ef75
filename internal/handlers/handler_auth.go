package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) *authHandler {
	h := &authHandler{userService: services.User, tokenService: services.Token}

	handlers := []gin.HandlerFunc{}
	if loginLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(loginLimiter))
	}
	handlers = append(handlers, h.login)

	rg.POST("/auth/login", handlers...)
	return h
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope{data=dto.LoginResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "login")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, logger, err, "Login")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		writeServiceError(c, logger, err, "Login")
		return
	}

	response.Success(c, http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user with its role and effective permissions.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 401 {object} response.Envelope
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	response.Success(c, http.StatusOK, dto.ToUserResponse(user))
}
