package http

import (
	"github.com/gin-gonic/gin"

	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/handler"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	assessmentHandler *handler.AssessmentHandler
	discoveryHandler  *handler.DiscoveryHandler
	chatHandler       *handler.ChatHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	assessmentHandler *handler.AssessmentHandler,
	discoveryHandler *handler.DiscoveryHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		assessmentHandler: assessmentHandler,
		discoveryHandler:  discoveryHandler,
		chatHandler:       chatHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authHandler.Signup)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Assessment routes
			assessment := protected.Group("/assessment")
			{
				assessment.POST("/complete", r.assessmentHandler.Complete)
			}

			// Discover routes
			discover := protected.Group("/discover")
			{
				discover.GET("/matches", r.discoveryHandler.GetMatches)
			}

			// Conversation routes
			conversations := protected.Group("/conversations")
			{
				conversations.POST("", r.chatHandler.Start)
				conversations.GET("", r.chatHandler.List)
				conversations.GET("/watch", r.chatHandler.Watch)
				conversations.GET("/:match_id", r.chatHandler.Get)
				conversations.POST("/:match_id/messages", r.chatHandler.SendMessage)
			}
		}

		// Assessment questions (public)
		v1.GET("/assessment/questions", r.assessmentHandler.GetQuestions)
	}

	return router
}
