// Package app wires the Call2FA stub server: repositories, services, handlers
// and the gin router.
package app

import (
	"context"
	"time"

	"call2fa/internal/handlers"
	"call2fa/internal/middleware"
	"call2fa/internal/repositories"
	"call2fa/internal/services"
	"call2fa/pkg/config"
	"call2fa/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// firstCallID is where stub call ids start, matching the shape of real ids.
const firstCallID = 95818344

// App represents the stub server structure
type App struct {
	Config      *config.Config
	Router      *gin.Engine
	UserHandler *handlers.UserHandler
	CallHandler *handlers.CallHandler
	RateLimiter *middleware.RateLimiter
	Log         *logger.Logger
}

// NewApp creates and initializes a new App instance
func NewApp(cfg *config.Config, log *logger.Logger) *App {
	if log == nil {
		log = logger.Discard()
	}
	app := &App{Config: cfg, Log: log}

	app.initializeRateLimiter()
	app.initializeDependencies()
	app.initializeRouter()

	return app
}

func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(a.Config.Stub.RateLimit), a.Config.Stub.Burst)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	accountRepo := repositories.NewAccountRepository(a.Config.Stub.Accounts)
	callRepo := repositories.NewCallRepository(firstCallID)

	userService := services.NewUserService(accountRepo, a.Config.Stub.JWTSecret, a.Config.Stub.TokenTTL)
	callService := services.NewCallService(callRepo)

	a.UserHandler = handlers.NewUserHandler(userService, a.Log)
	a.CallHandler = handlers.NewCallHandler(callService, a.Log)
}

func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// StartBackground runs housekeeping goroutines until ctx is done.
func (a *App) StartBackground(ctx context.Context) {
	go a.RateLimiter.Cleanup(ctx, time.Hour)
}
