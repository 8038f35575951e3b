// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	AdminHandler   *handler.AdminHandler
	RoleHandler    *handler.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginLimiter is nil when login throttling is disabled.
	LoginLimiter echo.MiddlewareFunc `name:"loginLimiter" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	adminHandler   *handler.AdminHandler
	roleHandler    *handler.RoleHandler
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   echo.MiddlewareFunc
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		adminHandler:   params.AdminHandler,
		roleHandler:    params.RoleHandler,
		authMiddleware: params.AuthMiddleware,
		loginLimiter:   params.LoginLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	manageUsers := r.authMiddleware.RequirePermission(entity.PermissionUserManagement)
	manageRoles := r.authMiddleware.RequirePermission(entity.PermissionRoleManagement)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		var loginMiddleware []echo.MiddlewareFunc
		if r.loginLimiter != nil {
			loginMiddleware = append(loginMiddleware, r.loginLimiter)
		}
		authGroup.POST("/login", r.authHandler.Login, loginMiddleware...)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword, loginMiddleware...)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// The caller's own sessions
	sessionGroup := e.Group("/sessions", authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.List)
		sessionGroup.DELETE("/:id", r.sessionHandler.Revoke)
		sessionGroup.POST("/revoke-all", r.sessionHandler.RevokeAll)
	}

	// Principal administration; role assignment on principals needs role management instead
	principalGroup := e.Group("/principals", authenticate)
	{
		principalGroup.POST("", r.adminHandler.ProvisionPrincipal, manageUsers)
		principalGroup.POST("/:id/account", r.adminHandler.CreateAccount, manageUsers)
		principalGroup.POST("/:id/account/unlock", r.adminHandler.Unlock, manageUsers)
		principalGroup.PUT("/:id/account/enabled", r.adminHandler.SetEnabled, manageUsers)
		principalGroup.POST("/:id/account/recovery", r.adminHandler.IssueRecoveryToken, manageUsers)
		principalGroup.POST("/:id/deactivate", r.adminHandler.Deactivate, manageUsers)
		principalGroup.GET("/:id/sessions", r.adminHandler.ListSessions, manageUsers)

		principalGroup.POST("/:id/roles", r.roleHandler.AssignRole, manageRoles)
		principalGroup.DELETE("/:id/roles/:roleId", r.roleHandler.RevokeRole, manageRoles)
		principalGroup.GET("/:id/permissions", r.roleHandler.ListPermissions, manageRoles)
	}

	// Role graph
	roleGroup := e.Group("/roles", authenticate, manageRoles)
	{
		roleGroup.POST("", r.roleHandler.CreateRole)
		roleGroup.GET("", r.roleHandler.ListRoles)
		roleGroup.POST("/:id/permissions", r.roleHandler.GrantPermission)
		roleGroup.DELETE("/:id/permissions/:name", r.roleHandler.RevokePermission)
	}

	permissionGroup := e.Group("/permissions", authenticate, manageRoles)
	{
		permissionGroup.POST("", r.roleHandler.CreatePermission)
	}
}
