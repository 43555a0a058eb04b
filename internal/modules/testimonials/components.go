package testimonials

import (
	"fmt"
	"strconv"

	"github.com/givefund/give/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	bodyPath  = "/testimonials"
	slidePath = "/testimonials/slides/"

	// bodyVals sends the browser's viewport width with every body request.
	bodyVals = "js:{vw: window.innerWidth}"
	// bodyTrigger re-evaluates the layout when the window is resized,
	// standing in for a media query listener.
	bodyTrigger = "load, resize from:window delay:250ms"
)

func slideURL(index int) string {
	return slidePath + strconv.Itoa(index)
}

// Section renders the testimonials block. The body starts in the layout for
// the width the request reported and is refreshed by the browser on load
// and on resize.
func Section(layout Layout, items []domain.Testimonial) g.Node {
	return h.Section(
		h.Class("testimonials-section"), h.ID("testimonials"),
		h.Div(h.Class("testimonials-background-overlay")),
		h.Div(
			h.Class("testimonials-content-wrapper"),
			h.H2(
				h.Class("section-title"),
				g.Text("Here’s What People Say About "),
				h.Span(h.Class("highlight-word"), g.Text("Give")),
			),
			h.Div(
				h.Class("testimonials-body"),
				hx.Get(bodyPath),
				hx.Vals(bodyVals),
				hx.Trigger(bodyTrigger),
				hx.Swap("innerHTML"),
				Body(layout, items),
			),
		),
	)
}

// Body renders the testimonials in the given layout. The carousel starts at
// the first slide.
func Body(layout Layout, items []domain.Testimonial) g.Node {
	if layout == LayoutGrid {
		return Grid(items)
	}
	return CarouselView(items, NewCarousel(0, len(items)), DefaultOptions)
}

// Grid renders every testimonial side by side.
func Grid(items []domain.Testimonial) g.Node {
	return h.Div(
		h.Class("testimonial-cards-desktop"),
		g.Map(items, Card),
	)
}

// CarouselView renders one position of the carousel. The container replaces
// itself with the next slide every Delay milliseconds, whether or not the
// navigation buttons were used.
func CarouselView(items []domain.Testimonial, c Carousel, opts Options) g.Node {
	return h.Div(
		h.Class("testimonial-swiper"),
		h.Data("slides-per-view", strconv.FormatFloat(opts.SlidesPerView, 'f', -1, 64)),
		h.Data("centered-slides", strconv.FormatBool(opts.CenteredSlides)),
		h.Style(fmt.Sprintf("--slides-per-view: %g; --space-between: %dpx", opts.SlidesPerView, opts.SpaceBetween)),
		g.If(opts.Delay > 0,
			g.Group{
				hx.Get(slideURL(c.Next())),
				hx.Trigger(opts.AutoplayTrigger()),
				hx.Swap("outerHTML"),
			},
		),
		h.Div(
			h.Class("swiper-wrapper"),
			h.Style(fmt.Sprintf("--slide-index: %d", c.Index)),
			g.Map(indexed(items), func(it indexedTestimonial) g.Node {
				class := "swiper-slide"
				if it.index == c.Index {
					class += " swiper-slide-active"
				}
				return h.Div(h.Class(class), Card(it.Testimonial))
			}),
		),
		g.If(opts.Navigation, g.Group{
			navButton("swiper-button-prev", "Previous slide", c.Prev(), c.HasPrev()),
			navButton("swiper-button-next", "Next slide", c.Index+1, c.HasNext()),
		}),
	)
}

func navButton(class, label string, target int, enabled bool) g.Node {
	if !enabled {
		return h.Button(
			h.Class(class+" swiper-button-disabled"),
			h.Type("button"),
			h.Aria("label", label),
			h.Disabled(),
		)
	}
	return h.Button(
		h.Class(class),
		h.Type("button"),
		h.Aria("label", label),
		hx.Get(slideURL(target)),
		hx.Target("closest .testimonial-swiper"),
		hx.Swap("outerHTML"),
	)
}

// Card renders a single testimonial.
func Card(t domain.Testimonial) g.Node {
	return h.Div(
		h.Class("testimonial-card"),
		h.P(h.Class("quote"), g.Text(`"`+t.Quote+`"`)),
		h.Div(
			h.Class("author-info"),
			h.Img(h.Src(t.Avatar), h.Alt(t.Name), h.Class("author-avatar")),
			h.Div(
				h.Class("author-details"),
				h.P(h.Class("author-name"), g.Text(t.Name)),
				h.P(h.Class("author-tagline"), g.Text(t.Tagline)),
			),
		),
	)
}

type indexedTestimonial struct {
	domain.Testimonial
	index int
}

func indexed(items []domain.Testimonial) []indexedTestimonial {
	out := make([]indexedTestimonial, len(items))
	for i, t := range items {
		out[i] = indexedTestimonial{Testimonial: t, index: i}
	}
	return out
}
