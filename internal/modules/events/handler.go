package events

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/domain"
	"github.com/givefund/give/internal/metrics"
	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/publicapi"
	"github.com/givefund/give/internal/rendering"
	"github.com/givefund/give/internal/view"
	"github.com/givefund/give/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
)

// ImageSource opens uploaded images. *publicapi.Client satisfies it.
type ImageSource interface {
	Image(ctx context.Context, relativePath string) (*http.Response, error)
}

// Placeholders supplies the fallback image bytes. *assets.Store satisfies it.
type Placeholders interface {
	Placeholder() ([]byte, error)
}

// Handler serves the events section and its fragments.
type Handler struct {
	service      *Service
	renderer     rendering.Renderer
	cfg          config.Provider
	images       ImageSource
	placeholders Placeholders
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, renderer rendering.Renderer, cfg config.Provider, images ImageSource, placeholders Placeholders, m *metrics.Metrics) *Handler {
	return &Handler{
		service:      service,
		renderer:     renderer,
		cfg:          cfg,
		images:       images,
		placeholders: placeholders,
		metrics:      m,
		now:          time.Now,
	}
}

// cardOptions builds the per-request card options. Share links use the
// configured site URL, or the origin the request came in on.
func (h *Handler) cardOptions(c echo.Context) CardOptions {
	site := h.cfg.GetAppBaseURL()
	if site == "" {
		site = c.Scheme() + "://" + c.Request().Host
	}
	return CardOptions{
		Location:   h.cfg.GetLocation(),
		APIBaseURL: h.cfg.GetAPIBaseURL(),
		ImageProxy: h.cfg.GetImageProxy(),
		SiteURL:    site,
	}
}

// Upcoming renders the card list. A failed fetch renders an empty list.
func (h *Handler) Upcoming(c echo.Context) error {
	events := h.service.Upcoming(c.Request().Context())

	opts := h.cardOptions(c)
	cards := make([]Card, len(events))
	for i, e := range events {
		cards[i] = NewCard(e, opts)
	}

	variant := "cards"
	if len(cards) == 0 {
		variant = "empty"
	}
	h.metrics.SectionRendered("events", variant)

	return h.renderer.RenderPage(c, http.StatusOK, Cards(cards))
}

// Modal renders the detail overlay for one event.
func (h *Handler) Modal(c echo.Context) error {
	event, err := h.lookup(c, c.Param("key"))
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, Modal(NewCard(event, h.cardOptions(c))))
}

// CloseModal answers with an empty body, which clears the modal container.
func (h *Handler) CloseModal(c echo.Context) error {
	return c.HTML(http.StatusOK, "")
}

// Detail renders the full page behind a shared link.
func (h *Handler) Detail(c echo.Context) error {
	event, err := h.service.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFound(err)
	}
	card := NewCard(event, h.cardOptions(c))
	page := layouts.Base(layouts.Props{Title: card.Title, Description: card.Excerpt}, DetailPage(card))
	return h.renderer.RenderPage(c, http.StatusOK, view.Templ(page))
}

// Calendar exports one event as an .ics download.
func (h *Handler) Calendar(c echo.Context) error {
	event, err := h.service.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFound(err)
	}
	card := NewCard(event, h.cardOptions(c))

	var sb strings.Builder
	if err := WriteCalendar(&sb, event, card.ShareURL, h.now()); err != nil {
		if errors.Is(err, ErrNoStartDate) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "This event has no date to add to a calendar.")
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+card.Slug+`.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(sb.String()))
}

// Image proxies an uploaded image and answers with the placeholder when the
// upstream fails. The placeholder is served once; it is never proxied.
func (h *Handler) Image(c echo.Context) error {
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	relativePath, err := publicapi.CleanImagePath(c.Param("*"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "image not found").SetInternal(err)
	}

	logger := middleware.FromContext(c.Request().Context())
	resp, err := h.images.Image(c.Request().Context(), relativePath)
	if err != nil {
		logger.Warn("Serving placeholder image", "path", relativePath, "error", err)
		return h.placeholder(c)
	}
	defer resp.Body.Close()

	// Only raster images are relayed; svg and anything else could carry script.
	contentType := resp.Header.Get(echo.HeaderContentType)
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") || mediaType == "image/svg+xml" {
		logger.Warn("Serving placeholder image", "path", relativePath, "content_type", contentType)
		return h.placeholder(c)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	return c.Stream(http.StatusOK, contentType, resp.Body)
}

func (h *Handler) placeholder(c echo.Context) error {
	h.metrics.ImageFallback()
	data, err := h.placeholders.Placeholder()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "image not found").SetInternal(err)
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

// lookup finds the event a modal key refers to.
func (h *Handler) lookup(c echo.Context, key string) (domain.Event, error) {
	event, err := h.service.FindByKey(c.Request().Context(), key)
	if err != nil {
		return domain.Event{}, notFound(err)
	}
	return event, nil
}

func notFound(err error) error {
	return echo.NewHTTPError(http.StatusNotFound, "Event not found").SetInternal(err)
}
