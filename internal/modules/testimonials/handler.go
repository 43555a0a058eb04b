package testimonials

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/givefund/give/internal/domain"
	"github.com/givefund/give/internal/metrics"
	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/rendering"
	"github.com/labstack/echo/v4"
)

// BodyRequest is the query of the section body endpoint.
type BodyRequest struct {
	Width int `query:"vw" validate:"gte=0"`
}

// Handler serves the testimonials fragments.
type Handler struct {
	renderer rendering.Renderer
	metrics  *metrics.Metrics
	items    []domain.Testimonial
}

// NewHandler creates a new Handler over the fixed testimonials.
func NewHandler(renderer rendering.Renderer, m *metrics.Metrics) *Handler {
	return &Handler{renderer: renderer, metrics: m, items: All()}
}

// width returns the viewport width the browser sent as ?vw=, falling back
// to the client hint.
func width(c echo.Context) (int, error) {
	var req BodyRequest
	if err := c.Bind(&req); err != nil {
		return 0, err
	}
	if err := c.Validate(&req); err != nil && !errors.Is(err, echo.ErrValidatorNotRegistered) {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Width > 0 {
		return req.Width, nil
	}
	return middleware.ViewportWidth(c), nil
}

// Body renders the section body in the layout for the viewport width.
func (h *Handler) Body(c echo.Context) error {
	w, err := width(c)
	if err != nil {
		return err
	}
	layout := LayoutFor(w)
	h.metrics.SectionRendered("testimonials", layout.String())
	return h.renderer.RenderPage(c, http.StatusOK, Body(layout, h.items))
}

// Slide renders the carousel positioned at the :index slide.
func (h *Handler) Slide(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid slide index")
	}
	carousel := NewCarousel(index, len(h.items))
	return h.renderer.RenderPage(c, http.StatusOK, CarouselView(h.items, carousel, DefaultOptions))
}
