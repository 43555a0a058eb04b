package events

import (
	"context"
	"log/slog"

	"github.com/givefund/give/internal/assets"
	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/metrics"
	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/publicapi"
	"github.com/givefund/give/internal/rendering"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	g "maragu.dev/gomponents"
)

// proxyRateLimit caps per-client requests per second on routes that hit
// the public API for every request.
const proxyRateLimit = 20

// Module implements module.Module and module.Section for upcoming events.
type Module struct {
	module.BaseModule
}

// New creates a new instance of the module.
func New() *Module {
	return &Module{}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "events"
}

// Register provides the events service, backed by the public API client.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Service, error) {
		client, err := do.Invoke[*publicapi.Client](i)
		if err != nil {
			return nil, err
		}
		return NewService(client), nil
	})
	return nil
}

// Boot sets up the section's routes.
func (m *Module) Boot(ctx context.Context, router *echo.Group, i do.Injector) error {
	slog.Info("Booting events module")

	service, err := do.Invoke[*Service](i)
	if err != nil {
		return err
	}
	cfg := do.MustInvoke[config.Provider](i)
	handler := NewHandler(
		service,
		do.MustInvoke[rendering.Renderer](i),
		cfg,
		do.MustInvoke[*publicapi.Client](i),
		do.MustInvoke[*assets.Store](i),
		do.MustInvoke[*metrics.Metrics](i),
	)
	limiter := middleware.RateLimiter(proxyRateLimit)

	events := router.Group("/events")
	events.GET("/upcoming", handler.Upcoming)
	events.GET("/modal", handler.CloseModal)
	events.GET("/modal/:key", handler.Modal)
	events.GET("/:slug", handler.Detail)
	events.GET("/:slug/calendar.ics", handler.Calendar, limiter)

	if cfg.GetImageProxy() {
		router.GET("/images/*", handler.Image, limiter)
	}
	return nil
}

// Section renders the events block. Cards arrive through /events/upcoming
// once the page has loaded.
func (m *Module) Section(c echo.Context) (g.Node, error) {
	return Section(), nil
}
