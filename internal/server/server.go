// Package server exposes the anonymization pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/audit"
	"github.com/trustmask/trustmask/internal/cache"
	"github.com/trustmask/trustmask/internal/config"
	"github.com/trustmask/trustmask/internal/logger"
	"github.com/trustmask/trustmask/internal/websocket"
)

// Version is the service version reported by /info.
const Version = "0.1.0"

// Server represents the anonymization HTTP server
type Server struct {
	config   *config.Config
	logger   *logger.Logger
	pipeline *anonymizer.Anonymizer
	cache    *cache.ResultCache // nil when caching is disabled
	audit    *audit.Store       // nil when auditing is disabled
	router   *mux.Router
	server   *http.Server
	wsHub    *websocket.Hub
	limiter  *clientLimiter

	startTime       time.Time
	totalRequests   int64
	totalDetections int64
}

// New creates a new server instance. cache and auditStore may be nil.
func New(cfg *config.Config, log *logger.Logger, pipeline *anonymizer.Anonymizer, resultCache *cache.ResultCache, auditStore *audit.Store) (*Server, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}

	wsHub := websocket.NewHub(&websocket.HubConfig{
		MaxConnections:  cfg.WebSocket.MaxConnections,
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		AllowedOrigins:  cfg.WebSocket.AllowedOrigins,
	}, log.WithComponent("websocket").Logger)

	server := &Server{
		config:    cfg,
		logger:    log.WithComponent("server"),
		pipeline:  pipeline,
		cache:     resultCache,
		audit:     auditStore,
		router:    mux.NewRouter(),
		wsHub:     wsHub,
		startTime: time.Now(),
	}

	if cfg.RateLimit.Enabled {
		server.limiter = newClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		server.limiter.startCleanupRoutine()
	}

	server.setupRoutes()

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/info", s.handleInfo).Methods("GET")

	if s.config.WebSocket.Enabled {
		s.router.HandleFunc(s.config.WebSocket.Path, s.handleWebSocket).Methods("GET")
	}

	api := s.router.NewRoute().Subrouter()
	api.Use(s.loggingMiddleware)
	api.Use(s.rateLimitMiddleware)
	api.HandleFunc("/anonymize", s.handleAnonymize).Methods("POST")
	api.HandleFunc("/anonymize/batch", s.handleAnonymizeBatch).Methods("POST")
	api.HandleFunc("/stats", s.handleStats).Methods("POST")
	api.HandleFunc("/cache/clear", s.handleCacheClear).Methods("POST")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting anonymization server",
		zap.Int("port", s.config.Server.Port),
		zap.Strings("detectors", s.pipeline.Detectors()),
		zap.Bool("cache_enabled", s.cache != nil),
		zap.Bool("audit_enabled", s.audit != nil),
	)

	if s.config.WebSocket.Enabled {
		go s.wsHub.Run()
	}

	return s.server.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping anonymization server")
	return s.server.Shutdown(ctx)
}

// Router exposes the route tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// handleWebSocket upgrades dashboard connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.wsHub.HandleWebSocket(w, r)
}

// GetWebSocketHub returns the WebSocket hub for broadcasting events
func (s *Server) GetWebSocketHub() *websocket.Hub {
	return s.wsHub
}

func (s *Server) countRequest() {
	atomic.AddInt64(&s.totalRequests, 1)
}

func (s *Server) countDetections(n int) {
	atomic.AddInt64(&s.totalDetections, int64(n))
}
