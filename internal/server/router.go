package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/contactbook-backend/internal/handlers"
	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/middleware"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *middleware.AuthMiddleware
	UserHandler    *handlers.UserHandler
	ContactHandler *handlers.ContactHandler
	AddressHandler *handlers.AddressHandler
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(otelgin.Middleware("contactbook-backend"))
	router.Use(middleware.AttachRequestContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/users", cfg.UserHandler.Register)
		api.POST("/users/login", cfg.UserHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// User
	protected.GET("/users/current", cfg.UserHandler.GetCurrent)
	protected.PATCH("/users/current", cfg.UserHandler.UpdateCurrent)
	protected.DELETE("/users/logout", cfg.UserHandler.Logout)
	// Contact
	protected.POST("/contacts", cfg.ContactHandler.Create)
	protected.GET("/contacts", cfg.ContactHandler.Search)
	protected.GET("/contacts/:id", cfg.ContactHandler.Get)
	protected.PUT("/contacts/:id", cfg.ContactHandler.Update)
	protected.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	// Address. Gin requires one wildcard name per segment, so the contact id
	// reuses :id here.
	protected.POST("/contacts/:id/addresses", cfg.AddressHandler.Create)
	protected.GET("/contacts/:id/addresses/:address_id", cfg.AddressHandler.Get)
	protected.PUT("/contacts/:id/addresses/:address_id", cfg.AddressHandler.Update)
	protected.DELETE("/contacts/:id/addresses/:address_id", cfg.AddressHandler.Delete)

	return router
}
