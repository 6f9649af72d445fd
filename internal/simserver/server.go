package simserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/l2sim/pdcp-entity/internal/config"
)

// Server wraps the gin engine and the underlying *http.Server so main.go
// can start it and shut it down gracefully.
type Server struct {
	engine *gin.Engine
	server *http.Server
	addr   string
}

// New builds a Server bound to cfg.ListenAddr, routed onto h.
func New(cfg *config.Config, h *Handler) *Server {
	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(TraceIDMiddleware())
	engine.Use(LoggingMiddleware())
	engine.Use(RecoveryMiddleware())

	SetupRouter(engine, h)

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: engine,
		},
		addr: cfg.ListenAddr,
	}
}

// Run blocks serving HTTP until the server is shut down.
func (s *Server) Run() error {
	slog.Info("starting debug server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down debug server")
	return s.server.Shutdown(ctx)
}
