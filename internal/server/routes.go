package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/givefund/give/internal/app"
	"github.com/givefund/give/internal/assets"
	"github.com/givefund/give/internal/handlers"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up the core routes and boots every module.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	store, err := do.Invoke[*assets.Store](s.injector)
	if err != nil {
		return fmt.Errorf("load static assets: %w", err)
	}
	s.E.GET(assets.Prefix+"/*", echo.WrapHandler(http.StripPrefix(assets.Prefix, store.Handler())))

	s.E.GET("/health", handlers.Health(s.version))
	s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}

	home := handlers.NewHomeHandler(app.Sections(s.modules))
	s.E.GET("/", home.HomeGet)

	slog.Info("Routes registered", "modules", len(s.modules))
	return nil
}
