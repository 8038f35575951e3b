package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// RoleHandler administers the role graph.
type RoleHandler struct {
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler.
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{permissionUC: params.PermissionUC, logger: params.Logger}
}

// CreateRoleRequest is the body of POST /roles.
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
}

// CreatePermissionRequest is the body of POST /permissions.
type CreatePermissionRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
}

// GrantPermissionRequest is the body of POST /roles/:id/permissions.
type GrantPermissionRequest struct {
	Permission string `json:"permission" validate:"required"`
}

// AssignRoleRequest is the body of POST /principals/:id/roles.
type AssignRoleRequest struct {
	RoleID int64 `json:"roleId" validate:"required,gt=0"`
}

// RoleResponse is the client view of a role or a permission.
type RoleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateRole defines a role.
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req CreateRoleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	role, err := h.permissionUC.CreateRole(c.Request().Context(), &usecase.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newRoleResponse(role), "Role created")
}

// ListRoles returns every role.
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.permissionUC.ListRoles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*RoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, newRoleResponse(role))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// CreatePermission defines a permission.
func (h *RoleHandler) CreatePermission(c echo.Context) error {
	var req CreatePermissionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	permission, err := h.permissionUC.CreatePermission(c.Request().Context(), &usecase.CreatePermissionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &RoleResponse{
		ID:          permission.ID,
		Name:        permission.Name,
		Description: permission.Description,
	}, "Permission created")
}

// GrantPermission adds a permission to a role.
func (h *RoleHandler) GrantPermission(c echo.Context) error {
	roleID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req GrantPermissionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.permissionUC.GrantPermission(c.Request().Context(), roleID, req.Permission); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Permission granted")
}

// RevokePermission removes a permission from a role.
func (h *RoleHandler) RevokePermission(c echo.Context) error {
	roleID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.permissionUC.RevokePermission(c.Request().Context(), roleID, c.Param("name")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Permission revoked")
}

// AssignRole gives a principal a role.
func (h *RoleHandler) AssignRole(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req AssignRoleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.permissionUC.AssignRole(c.Request().Context(), principalID, req.RoleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Role assigned")
}

// RevokeRole takes a role away from a principal.
func (h *RoleHandler) RevokeRole(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	roleID, err := paramID(c, "roleId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.permissionUC.RevokeRole(c.Request().Context(), principalID, roleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Role revoked")
}

// ListPermissions returns the effective permissions of a principal.
func (h *RoleHandler) ListPermissions(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	perms, err := h.permissionUC.Resolve(c.Request().Context(), principalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	names := perms.Strings()
	if names == nil {
		names = []string{}
	}

	return response.Success(c, http.StatusOK, names, "")
}

func newRoleResponse(role *entity.Role) *RoleResponse {
	return &RoleResponse{ID: role.ID, Name: role.Name, Description: role.Description}
}
