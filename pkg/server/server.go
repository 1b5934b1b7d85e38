package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/animate/pkg/assets"
	"github.com/vango-dev/animate/pkg/middleware"
	"github.com/vango-dev/animate/pkg/render"
	"github.com/vango-dev/animate/pkg/settings"
)

// Server serves the demo page and JSON API.
type Server struct {
	config   *ServerConfig
	holder   *settings.Holder
	renderer *render.Renderer
	trusted  trustedProxies
	assets   *assets.Manifest

	// Optional collaborators, set before the first call to Handler.
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	reload   http.Handler

	routerOnce sync.Once
	router     http.Handler

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server reading global settings from holder. A nil config
// uses DefaultServerConfig; a nil holder serves library defaults.
func New(config *ServerConfig, holder *settings.Holder) *Server {
	if config == nil {
		config = DefaultServerConfig()
	} else {
		config = config.Clone()
		config.applyDefaults()
	}
	if holder == nil {
		holder = settings.NewHolder(nil)
	}
	logger := slog.Default().With("component", "server")
	manifest := assets.NewManifest()
	manifest.Add(render.ClientScriptName, []byte(render.ClientScript))
	return &Server{
		config:   config,
		holder:   holder,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		trusted:  parseTrustedProxies(config.TrustedProxies, logger),
		assets:   manifest,
		gatherer: prometheus.DefaultGatherer,
		logger:   logger,
	}
}

// SetMetrics installs request metrics and the gatherer served on /metrics.
// A nil gatherer keeps prometheus.DefaultGatherer.
func (s *Server) SetMetrics(m *middleware.Metrics, g prometheus.Gatherer) {
	s.metrics = m
	if g != nil {
		s.gatherer = g
	}
}

// SetReloadHandler mounts h at the reload path and announces the path to
// the client script.
func (s *Server) SetReloadHandler(h http.Handler) {
	s.reload = h
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger { return s.logger }

// Config returns the effective server configuration.
func (s *Server) Config() *ServerConfig { return s.config }

// Settings returns the settings store currently served.
func (s *Server) Settings() *settings.Store { return s.holder.Load() }

// RoutePattern returns the chi route pattern matched by r, or the URL path
// when r was not routed by chi.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// Handler returns the HTTP handler. It is built once; collaborators set
// afterwards are not picked up.
func (s *Server) Handler() http.Handler {
	s.routerOnce.Do(func() {
		s.router = s.routes()
	})
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler().ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.accessLog)
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(middleware.Tracing(
		middleware.WithSpanRoute(RoutePattern),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/healthz"
		}),
	))

	r.Get("/", s.handleDemo)
	r.Get("/animate.js", s.handleClientScript)
	r.Get(AssetPrefix+"{name}", s.handleAsset)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/vocabulary", s.handleVocabulary)
		r.Get("/attributes", s.handleAttributes)
		r.Get("/payload", s.handlePayload)
		r.Get("/settings", s.handleSettings)
		r.Post("/apply", s.handleApply)
	})

	r.Get(s.config.ReloadPath, func(w http.ResponseWriter, r *http.Request) {
		if s.reload == nil {
			http.NotFound(w, r)
			return
		}
		s.reload.ServeHTTP(w, r)
	})
	return r
}

// accessLog logs one line per request with the resolved client address.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		client := ""
		if addr, ok := clientAddr(r, s.trusted); ok {
			client = addr.String()
		}
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"client", client,
			"request_id", chimw.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
}

// Run listens on the configured address until SIGINT/SIGTERM or ctx is
// done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = s.newHTTPServer()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
