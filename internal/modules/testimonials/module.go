package testimonials

import (
	"context"
	"log/slog"

	"github.com/givefund/give/internal/metrics"
	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/rendering"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	g "maragu.dev/gomponents"
)

// Module implements module.Section for the testimonials block.
type Module struct {
	module.BaseModule
	metrics *metrics.Metrics
}

// New creates a new instance of the module.
func New() *Module {
	return &Module{}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "testimonials"
}

// Boot sets up the body and carousel routes.
func (m *Module) Boot(ctx context.Context, router *echo.Group, i do.Injector) error {
	slog.Info("Booting testimonials module")

	m.metrics = do.MustInvoke[*metrics.Metrics](i)
	handler := NewHandler(do.MustInvoke[rendering.Renderer](i), m.metrics)

	routes := router.Group("/testimonials")
	routes.GET("", handler.Body)
	routes.GET("/slides/:index", handler.Slide)
	return nil
}

// Section renders the block in the layout for the width the request
// reported, if any.
func (m *Module) Section(c echo.Context) (g.Node, error) {
	layout := LayoutFor(middleware.ViewportWidth(c))
	m.metrics.SectionRendered("testimonials", layout.String())
	return Section(layout, All()), nil
}
