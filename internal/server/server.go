package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/givefund/give/internal/assets"
	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/handlers"
	"github.com/givefund/give/internal/metrics"
	appmiddleware "github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/publicapi"
	"github.com/givefund/give/internal/rendering"
	"github.com/givefund/give/internal/tracing"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/trace"
)

// routeStateMaxAge bounds how long a stored route state survives, in seconds.
const routeStateMaxAge = 10 * 60

// Options carries what the entrypoint decides about the server.
type Options struct {
	Modules []module.Module
	Version string
	// HTTPClient overrides the client used for the public API.
	HTTPClient *http.Client
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	injector        do.Injector
	modules         []module.Module
	version         string
	registry        *prometheus.Registry
	shutdownTracing func()
}

// New wires the services into a fresh injector, lets every module register
// its own, and configures echo. Routes are added by RegisterRoutes.
func New(ctx context.Context, cfg config.Provider, opts Options) (*Server, error) {
	tracer, shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.GetTracingEnabled(),
		ServiceName: "give",
		ZipkinURL:   cfg.GetZipkinURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	injector := do.New()
	do.ProvideValue[config.Provider](injector, cfg)
	do.ProvideValue(injector, reg)
	do.ProvideValue[trace.Tracer](injector, tracer)
	do.ProvideValue[rendering.Renderer](injector, rendering.NewUniversalRenderer())
	do.Provide(injector, func(i do.Injector) (*metrics.Metrics, error) {
		return metrics.New(do.MustInvoke[*prometheus.Registry](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*publicapi.Client, error) {
		clientOpts := []publicapi.Option{
			publicapi.WithTracer(do.MustInvoke[trace.Tracer](i)),
			publicapi.WithMetrics(do.MustInvoke[*metrics.Metrics](i)),
		}
		if opts.HTTPClient != nil {
			clientOpts = append(clientOpts, publicapi.WithHTTPClient(opts.HTTPClient))
		}
		return publicapi.New(cfg.GetAPIBaseURL(), cfg.GetEventsPath(), cfg.GetAPITimeout(), clientOpts...), nil
	})
	do.Provide(injector, func(i do.Injector) (*assets.Store, error) {
		return assets.NewEmbedded()
	})

	for _, m := range opts.Modules {
		if err := m.Register(injector); err != nil {
			shutdownTracing()
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
		slog.Debug("Registered module", "module", m.Name())
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.Tracing(tracer))
	e.Use(appmiddleware.AccessLog())
	e.Use(appmiddleware.Viewport)

	// Sessions only carry route state between a redirect and the next render.
	store := sessions.NewCookieStore(sessionKey(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   routeStateMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Validator = handlers.NewValidator()
	if r, ok := do.MustInvoke[rendering.Renderer](injector).(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	return &Server{
		E:               e,
		Cfg:             cfg,
		injector:        injector,
		modules:         opts.Modules,
		version:         opts.Version,
		registry:        reg,
		shutdownTracing: shutdownTracing,
	}, nil
}

// sessionKey returns the configured secret, or a random per-process key when
// none is set. Route state then does not survive a restart.
func sessionKey(secret string) []byte {
	if secret != "" {
		return []byte(secret)
	}
	slog.Warn("SESSION_SECRET not set, using a random session key")
	return securecookie.GenerateRandomKey(32)
}

// Injector exposes the service container, useful for testing.
func (s *Server) Injector() do.Injector {
	return s.injector
}
