// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mailpilot/internal/delivery/http/middleware"
	"mailpilot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	TemplateHandler  *handler.TemplateHandler
	CampaignHandler  *handler.CampaignHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	templateHandler  *handler.TemplateHandler
	campaignHandler  *handler.CampaignHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		templateHandler:  params.TemplateHandler,
		campaignHandler:  params.CampaignHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/current-user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)

		// Unknown paths under the auth prefix answer with the valid endpoint list.
		authGroup.Any("/*", r.authHandler.UnknownAuthEndpoint)
	}

	// Template routes, all behind authentication
	templateGroup := api.Group("/templates")
	templateGroup.Use(r.authMiddleware.Authenticate)
	{
		templateGroup.GET("", r.templateHandler.List)
		templateGroup.POST("", r.templateHandler.Create)
		templateGroup.GET("/:id", r.templateHandler.Get)
		templateGroup.PUT("/:id", r.templateHandler.Update)
		templateGroup.DELETE("/:id", r.templateHandler.Delete)
	}

	// Campaign routes, all behind authentication
	campaignGroup := api.Group("/campaigns")
	campaignGroup.Use(r.authMiddleware.Authenticate)
	{
		campaignGroup.GET("", r.campaignHandler.List)
		campaignGroup.POST("", r.campaignHandler.Create)
		campaignGroup.GET("/:id", r.campaignHandler.Get)
		campaignGroup.PUT("/:id", r.campaignHandler.Update)
		campaignGroup.DELETE("/:id", r.campaignHandler.Delete)
		campaignGroup.POST("/:id/send", r.campaignHandler.Send)
	}

	// Analytics routes, behind authentication
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate)
	{
		analyticsGroup.GET("/dashboard", r.analyticsHandler.Dashboard)
	}
}
