package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/config"
	"github.com/zeuskitchen/backend/internal/api"
	"github.com/zeuskitchen/backend/internal/router"
)

// Server wraps the HTTP server around the configured router.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New assembles the server from its dependencies.
func New(cfg *config.Config, deps api.Dependencies) *Server {
	engine := router.SetupRouter(deps)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              cfg.ServerHost + ":" + cfg.ServerPort,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
