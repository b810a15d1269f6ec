package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/estate-core/internal/array"
	"github.com/nerrad567/estate-core/internal/audit"
	"github.com/nerrad567/estate-core/internal/infrastructure/config"
	"github.com/nerrad567/estate-core/internal/infrastructure/database"
	"github.com/nerrad567/estate-core/internal/infrastructure/logging"
	"github.com/nerrad567/estate-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/estate-core/internal/openapi"
	"github.com/nerrad567/estate-core/internal/property"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// docsSpecURL is where the Swagger UI page loads the document from.
const docsSpecURL = "/swagger.json"

// EventPublisher publishes change events to the message bus.
// *mqtt.Client satisfies it.
type EventPublisher interface {
	PublishJSON(topic string, v any, retained bool) error
	Topics() mqtt.Topics
	IsConnected() bool
}

// PointWriter records change events as time-series points.
// *influxdb.Client satisfies it.
type PointWriter interface {
	WriteCollectionEvent(resource, action string, size int)
	WritePropertyStats(count int, values map[string]float64)
	IsConnected() bool
}

// Deps holds the dependencies required by the API server.
//
// Properties, Array and Logger are required. The rest are optional; a nil
// sink is skipped when change events are fanned out.
type Deps struct {
	Config     config.APIConfig
	WS         config.WebSocketConfig
	Logger     *logging.Logger
	Properties property.Store
	Array      array.Store
	AuditRepo  audit.Repository
	Recorder   *audit.Recorder
	Events     EventPublisher
	Points     PointWriter
	DB         *database.DB
	Hub        *Hub // If set, the server uses this hub instead of creating its own
	Version    string
}

// Server is the HTTP API server for Estate Core.
//
// It manages the HTTP listener, routes, middleware, and WebSocket hub.
// The server is created with New() and started with Start().
type Server struct {
	cfg        config.APIConfig
	wsCfg      config.WebSocketConfig
	logger     *logging.Logger
	properties property.Store
	array      array.Store
	auditRepo  audit.Repository
	recorder   *audit.Recorder
	events     EventPublisher
	points     PointWriter
	db         *database.DB
	version    string
	startTime  time.Time

	validator *openapi.Validator
	specJSON  []byte
	docsPage  []byte

	server      *http.Server
	hub         *Hub
	externalHub bool               // true if hub was injected externally
	cancel      context.CancelFunc // cancels background goroutines on Close()
}

// New creates a new API server with the given dependencies.
//
// The OpenAPI document and the documentation page are rendered once here.
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Properties == nil {
		return nil, fmt.Errorf("property store is required")
	}
	if deps.Array == nil {
		return nil, fmt.Errorf("array store is required")
	}

	doc := openapi.Build(deps.Version)
	specJSON, err := openapi.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering openapi document: %w", err)
	}
	docsPage, err := openapi.SwaggerUI(docsSpecURL)
	if err != nil {
		return nil, fmt.Errorf("rendering docs page: %w", err)
	}

	s := &Server{
		cfg:        deps.Config,
		wsCfg:      deps.WS,
		logger:     deps.Logger,
		properties: deps.Properties,
		array:      deps.Array,
		auditRepo:  deps.AuditRepo,
		recorder:   deps.Recorder,
		events:     deps.Events,
		points:     deps.Points,
		db:         deps.DB,
		version:    deps.Version,
		startTime:  time.Now(),
		validator:  openapi.NewValidator(doc),
		specJSON:   specJSON,
		docsPage:   docsPage,
	}

	if s.recorder != nil {
		s.recorder.SetLogger(deps.Logger.With("component", "audit"))
	}

	if deps.Hub != nil {
		s.hub = deps.Hub
		s.externalHub = true
	}

	return s, nil
}

// Start begins listening for HTTP connections.
//
// It starts the WebSocket hub and the audit recorder, then launches the
// HTTP listener in a background goroutine. The server can be stopped with
// Close().
func (s *Server) Start(ctx context.Context) error {
	// Background goroutines outlive ctx; Close stops them once requests drain.
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))

	if s.hub == nil {
		s.hub = NewHub(s.wsCfg, s.logger)
		go s.hub.Run(srvCtx)
	}

	if s.recorder != nil {
		go s.recorder.Run(srvCtx)
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// In-flight requests get up to 10 seconds to finish. Background goroutines
// are cancelled afterwards so the audit recorder can flush the events those
// requests produced.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	shutdownErr := s.server.Shutdown(ctx)

	if s.cancel != nil {
		s.cancel()
	}

	if s.recorder != nil {
		select {
		case <-s.recorder.Done():
		case <-ctx.Done():
			s.logger.Warn("audit log flush timed out")
		}
	}

	if shutdownErr != nil {
		return fmt.Errorf("shutting down API server: %w", shutdownErr)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
