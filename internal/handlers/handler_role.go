package handlers

import (
	"context"
	"net/http"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/gin-gonic/gin"
)

type roleHandler struct {
	accessControl portssvc.AccessControlSvcFacade
}

// registerRoleRoutes registers access-control routes.
func registerRoleRoutes(rg *gin.RouterGroup, accessControl portssvc.AccessControlSvcFacade) {
	h := &roleHandler{accessControl: accessControl}

	roles := rg.Group("/roles")
	{
		roles.POST("/grant", h.grantRole)
		roles.POST("/revoke", h.revokeRole)
		roles.GET("/:role/members", h.listMembers)
	}
}

// grantRole godoc
// @Summary Grant a role
// @Description Grants role to account; granting a held role is a no-op (DEFAULT_ADMIN)
// @Tags roles
// @Accept  json
// @Param   grant body dto.RoleChangeRequest true "Role and account"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse "Unknown role or zero account"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks DEFAULT_ADMIN"
// @Security BearerAuth
// @Router /roles/grant [post]
func (h *roleHandler) grantRole(c *gin.Context) {
	h.changeRole(c, h.accessControl.GrantRole, "Grant role")
}

// revokeRole godoc
// @Summary Revoke a role
// @Description Revokes role from account; revoking an absent grant is a no-op (DEFAULT_ADMIN)
// @Tags roles
// @Accept  json
// @Param   grant body dto.RoleChangeRequest true "Role and account"
// @Success 204 "No Content"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks DEFAULT_ADMIN"
// @Security BearerAuth
// @Router /roles/revoke [post]
func (h *roleHandler) revokeRole(c *gin.Context) {
	h.changeRole(c, h.accessControl.RevokeRole, "Revoke role")
}

func (h *roleHandler) changeRole(c *gin.Context, change func(ctx context.Context, caller domain.Address, role domain.Role, account domain.Address) error, action string) {
	var req dto.RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := change(c.Request.Context(), caller, domain.Role(req.Role), req.Account); err != nil {
		respondError(c, err, action)
		return
	}
	c.Status(http.StatusNoContent)
}

// listMembers godoc
// @Summary List a role's members
// @Tags roles
// @Produce  json
// @Param   role path string true "Role" Enums(DEFAULT_ADMIN, NFT_ADMIN, WITHDRAW)
// @Success 200 {array} dto.RoleGrantResponse
// @Failure 400 {object} handlers.ErrorResponse "Unknown role"
// @Security BearerAuth
// @Router /roles/{role}/members [get]
func (h *roleHandler) listMembers(c *gin.Context) {
	role := domain.Role(c.Param("role"))
	grants, err := h.accessControl.ListRoleMembers(c.Request.Context(), role)
	if err != nil {
		respondError(c, err, "List role members")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleGrantResponses(grants))
}
