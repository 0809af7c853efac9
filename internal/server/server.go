package server

import (
	"context"
	"fmt"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tupyy/graph-crawler/internal/config"
)

type RegisterHandlersFn func(router *gin.RouterGroup)

// Server hosts the HTTP API.
type Server struct {
	srv *http.Server
}

func NewServer(cfg *config.Configuration, registerHandlers RegisterHandlersFn) *Server {
	if cfg.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Logger())
	router.Use(ginzap.RecoveryWithZap(zap.L().Named("http"), true))

	api := router.Group("/api/v1")
	registerHandlers(api)

	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		},
	}
}

// Start blocks serving requests until the listener fails or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("http").Infow("server listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
