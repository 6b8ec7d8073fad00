// Package httpapi exposes the account service over HTTP: route wiring,
// the response envelope, session-cookie plumbing, and error-to-status
// mapping. Nothing is allowed to escape a handler uncaught; every outcome
// is rendered as an envelope.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/amankou/farmauth/internal/logging"
	"github.com/amankou/farmauth/internal/server/accounts"
	"github.com/amankou/farmauth/internal/server/config"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	accounts *accounts.Service
	engine   *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, as *accounts.Service) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		logger:   l.With("module", "httpapi"),
		accounts: as,
		engine:   engine,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	// Liveness probe (no auth required)
	s.engine.GET("/health", s.handleHealth)

	// Account routes
	s.engine.POST("/register", s.handleRegister)
	s.engine.POST("/login", s.handleLogin)

	// Session-gated routes
	s.engine.GET("/", s.requireSession(), s.handleWhoAmI)
	s.engine.DELETE("/", s.requireSession(), s.handleLogout)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.cfg.EndpointAddrHTTP,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.EndpointAddrHTTP, "environment", s.cfg.Environment)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
