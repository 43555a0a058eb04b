package hero

import (
	"context"
	"log/slog"

	"github.com/givefund/give/internal/module"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	g "maragu.dev/gomponents"
)

// Module implements module.Section for the landing banner.
type Module struct {
	module.BaseModule
}

// New creates a new instance of the module.
func New() *Module {
	return &Module{}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "hero"
}

// Boot registers the donate trigger.
func (m *Module) Boot(ctx context.Context, router *echo.Group, i do.Injector) error {
	slog.Info("Booting hero module")
	router.GET(DonatePath, Donate)
	return nil
}

// Section renders the banner. It has no data and cannot fail.
func (m *Module) Section(c echo.Context) (g.Node, error) {
	return Section(), nil
}
