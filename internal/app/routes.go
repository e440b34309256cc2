package app

import (
	"net/http"

	"call2fa/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// configure all middleware for the router
func (a *App) setupMiddleware() {
	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.LoggingMiddleware(a.Log))
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.SecureHeaders())
	a.Router.Use(gin.Recovery())
}

func (a *App) setupRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every Call2FA endpoint is trailing-slash terminated.
	api := a.Router.Group("/:version")
	{
		api.POST("/auth/", a.UserHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.Stub.JWTSecret))
		{
			protected.POST("/call/", a.CallHandler.Call)
			protected.GET("/call/:call_id/", a.CallHandler.Info)
			protected.POST("/pool/:pool_id/call/", a.CallHandler.PoolCall)
			protected.POST("/pool/:pool_id/call/six-digits/", a.CallHandler.PoolCallSixDigits)
			protected.POST("/code/call/", a.CallHandler.CodeCall)
		}
	}
}
