package handlers

import (
	"net/http"

	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/view"
	"github.com/givefund/give/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	sections []module.Section
}

// NewHomeHandler creates a new HomeHandler that renders sections in order.
func NewHomeHandler(sections []module.Section) *HomeHandler {
	return &HomeHandler{sections: sections}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	// A failing section is left out; the rest of the page still renders.
	nodes := make([]g.Node, 0, len(h.sections))
	for _, s := range h.sections {
		node, err := s.Section(c)
		if err != nil {
			logger.Error("Failed to render section", "section", s.Name(), "error", err)
			continue
		}
		nodes = append(nodes, node)
	}

	page := layouts.Base(layouts.Props{
		Description: "Give connects donors, volunteers and verified causes.",
		ScrollTo:    view.PopRouteState(c, view.StateScrollTo),
	}, nodes...)

	return c.Render(http.StatusOK, "", view.Templ(page))
}
