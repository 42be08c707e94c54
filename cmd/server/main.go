package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-service/internal/http/health"
	"github.com/janisto/hello-service/internal/http/v1/routes"
	"github.com/janisto/hello-service/internal/platform/config"
	applog "github.com/janisto/hello-service/internal/platform/logging"
	"github.com/janisto/hello-service/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "invalid configuration", err)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogFatal(context.Background(), "invalid configuration", err)
	}
	if cfg.Version != "" {
		Version = cfg.Version
	}

	m := metrics.New()
	srv := newServer(cfg.Addr(), newRouter(cfg, m))
	servers := []*http.Server{srv}
	if cfg.MetricsAddr != "" {
		servers = append(servers, newServer(cfg.MetricsAddr, newMetricsRouter(m)))
	}

	listenErr := make(chan error, len(servers))
	for _, s := range servers {
		go func() {
			applog.LogInfo(context.Background(), "server listening", zap.String("addr", s.Addr), zap.String("version", Version))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				listenErr <- err
			}
		}()
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err)
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(ctx); err != nil {
			applog.LogError(ctx, "server shutdown error", err, zap.String("addr", s.Addr))
		}
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newRouter assembles the public handler: base middleware, the health check,
// the huma operations and 404 handling for everything else.
func newRouter(cfg config.Config, m *metrics.HTTP) chi.Router {
	router := chi.NewRouter()
	// Unregistered methods on known paths are unmatched routes too.
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.NotFoundHandler())

	router.Use(
		appmiddleware.Security(routes.DocsPath()),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	api := humachi.New(router, routes.APIConfig(Version, cfg.DocsEnabled))
	routes.Register(api)
	return router
}

func newMetricsRouter(m *metrics.HTTP) chi.Router {
	router := chi.NewRouter()
	router.Use(respond.Recoverer())
	router.NotFound(respond.NotFoundHandler())
	router.Method(http.MethodGet, "/metrics", m.Handler())
	return router
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
