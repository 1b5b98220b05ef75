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

type roleHandler struct {
	roleService portssvc.RoleSvcFacade
}

func registerRoleRoutes(rg *gin.RouterGroup, gate domain.Gate, roleService portssvc.RoleSvcFacade) {
	h := &roleHandler{roleService: roleService}

	canRead := middleware.RequireAny(gate, domain.PermRolesRead)
	canWrite := middleware.RequireAny(gate, domain.PermRolesWrite)

	roles := rg.Group("/roles")
	{
		roles.GET("", canRead, h.listRoles)
		roles.POST("", canWrite, h.createRole)
		roles.GET("/:id", canRead, h.getRole)
		roles.PUT("/:id", canWrite, h.updateRole)
		roles.DELETE("/:id", canWrite, h.deleteRole)
	}
}

// listRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {object} response.Envelope{data=[]dto.RoleResponse}
// @Security BearerAuth
// @Router /roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "List roles")
		return
	}
	response.List(c, dto.ToListRoleResponse(roles), len(roles), len(roles))
}

// createRole godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role details"
// @Success 201 {object} response.Envelope{data=dto.RoleResponse}
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /roles [post]
func (h *roleHandler) createRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "create role")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, err := h.roleService.CreateRole(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Create role")
		return
	}
	response.Success(c, http.StatusCreated, dto.ToRoleResponse(role))
}

// getRole godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} response.Envelope{data=dto.RoleResponse}
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *roleHandler) getRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("role_id", c.Param("id")))

	role, err := h.roleService.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err, "Get role")
		return
	}
	response.Success(c, http.StatusOK, dto.ToRoleResponse(role))
}

// updateRole godoc
// @Summary Update a role
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body dto.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.RoleResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *roleHandler) updateRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("role_id", c.Param("id")))

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "update role")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Update role")
		return
	}
	response.Success(c, http.StatusOK, dto.ToRoleResponse(role))
}

// deleteRole godoc
// @Summary Delete a role
// @Description Roles still assigned to users cannot be deleted.
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *roleHandler) deleteRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("role_id", c.Param("id")))

	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.roleService.DeleteRole(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, logger, err, "Delete role")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Role deleted successfully")
}
