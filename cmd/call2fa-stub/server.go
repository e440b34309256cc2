package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"call2fa/internal/app"
	"call2fa/pkg/logger"
)

type Server struct {
	app    *app.App
	server *http.Server
}

// create the HTTP server
func NewServer(a *app.App) *Server {
	return &Server{
		app: a,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", a.Config.Stub.Port),
			Handler:           a.Router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// start the HTTP server with graceful shutdown
func (s *Server) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	s.app.StartBackground(ctx)

	go func() {
		logger.GlobalLogger.Printf("Starting Call2FA stub on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GlobalLogger.Errorf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	s.shutdown()
}

func (s *Server) shutdown() {
	logger.GlobalLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logger.GlobalLogger.Errorf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	logger.GlobalLogger.Println("Server exited")
}
