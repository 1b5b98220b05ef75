package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, gate domain.Gate, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	canRead := middleware.RequireAny(gate, domain.PermUsersRead)
	canWrite := middleware.RequireAny(gate, domain.PermUsersWrite)

	users := rg.Group("/users")
	{
		users.GET("", canRead, h.listUsers)
		users.POST("", canWrite, h.createUser)
		users.GET("/:id", canRead, h.getUser)
		users.PUT("/:id", canWrite, h.updateUser)
	}
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Envelope{data=[]dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err, "list users")
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		writeServiceError(c, logger, err, "List users")
		return
	}
	c.JSON(http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		Data:   dto.ToListUserResponse(users),
		Count:  intPtr(len(users)),
	})
}

// createUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "create user")
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Create user")
		return
	}
	response.Success(c, http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_user_id", c.Param("id")))

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err, "Get user")
		return
	}
	response.Success(c, http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_user_id", c.Param("id")))

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "update user")
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Update user")
		return
	}
	response.Success(c, http.StatusOK, dto.ToUserResponse(user))
}
