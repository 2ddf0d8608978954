package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
	"github.com/killallgit/secondlife-api/pkg/config"
	"github.com/rs/zerolog"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	cfg                *config.Config
	logger             *zerolog.Logger
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	closers            []func() error
	shutdownOnce       sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, cfg *config.Config, logger *zerolog.Logger) *Server {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	engine := gin.New()

	server := &Server{
		engine:       engine,
		cfg:          cfg,
		logger:       logger,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			ReadTimeout:    orDefault(cfg.Server.ReadTimeout, 30*time.Second),
			WriteTimeout:   orDefault(cfg.Server.WriteTimeout, 60*time.Second),
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
	if cfg.Server.MaxHeaderBytes > 0 {
		server.httpServer.MaxHeaderBytes = cfg.Server.MaxHeaderBytes
	}

	return server
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// OnShutdown registers a resource to close after the listener stops
func (s *Server) OnShutdown(closer func() error) {
	s.closers = append(s.closers, closer)
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the engine wrapped with CORS, as served on the listener
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	if s.dependencies.Logger == nil {
		s.dependencies.Logger = s.logger
	}

	s.setupMiddleware()
	RegisterRoutes(s.engine, s.dependencies, s.routeOptions())

	var handler http.Handler = s.engine
	if s.cfg.Security.EnableCORS {
		handler = WithCORS(handler, CORSOptions{
			Origins: s.cfg.Security.CORSOrigins,
			Methods: s.cfg.Security.CORSMethods,
			Headers: s.cfg.Security.CORSHeaders,
		})
	}
	s.httpServer.Handler = handler

	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.cfg.Security.EnableRequestID {
		s.engine.Use(RequestID())
	}
	s.engine.Use(Recovery(s.logger))
	s.engine.Use(Logger(s.logger))

	maxBody := s.cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	s.engine.Use(RequestSizeLimitWithSize(maxBody))
}

func (s *Server) routeOptions() RouteOptions {
	opts := RouteOptions{RateLimiting: s.cfg.RateLimiting.Enabled}
	if !opts.RateLimiting {
		return opts
	}

	limit := func(endpoint string) gin.HandlerFunc {
		perMinute := s.cfg.RateLimiting.Endpoints[endpoint]
		if perMinute <= 0 {
			perMinute = s.cfg.RateLimiting.Endpoints["default"]
		}
		burst := max(perMinute/6, 1)
		return PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized, perMinute, burst)
	}
	opts.SearchLimit = limit("search")
	opts.SummarizeLimit = limit("summarize")
	opts.DefaultLimit = limit("default")
	return opts
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server; later calls are no-ops
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		// Stop the rate limiter cleanup goroutine
		close(s.cleanupStop)

		err = s.httpServer.Shutdown(ctx)
		for _, closer := range s.closers {
			if cerr := closer(); cerr != nil {
				s.logger.Warn().Err(cerr).Msg("error closing resource during shutdown")
			}
		}
	})
	return err
}
