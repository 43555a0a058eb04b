package testimonials

import "fmt"

// Breakpoint is the smallest viewport width, in CSS pixels, that gets the
// static grid.
const Breakpoint = 993

// Layout selects how the testimonials are arranged.
type Layout int

const (
	LayoutCarousel Layout = iota
	LayoutGrid
)

func (l Layout) String() string {
	if l == LayoutGrid {
		return "grid"
	}
	return "carousel"
}

// LayoutFor picks the layout for a viewport width. An unknown width (0)
// gets the carousel.
func LayoutFor(width int) Layout {
	if width >= Breakpoint {
		return LayoutGrid
	}
	return LayoutCarousel
}

// Options mirrors the carousel's behaviour settings.
type Options struct {
	Delay                int // autoplay interval in milliseconds
	DisableOnInteraction bool
	SlidesPerView        float64
	SpaceBetween         int // pixels
	CenteredSlides       bool
	Navigation           bool
}

// DefaultOptions autoplays every 3 seconds and keeps going after the
// visitor uses the navigation buttons.
var DefaultOptions = Options{
	Delay:                3000,
	DisableOnInteraction: false,
	SlidesPerView:        1.2,
	SpaceBetween:         20,
	CenteredSlides:       true,
	Navigation:           true,
}

// AutoplayTrigger is the htmx trigger that advances the carousel.
func (o Options) AutoplayTrigger() string {
	return fmt.Sprintf("every %dms", o.Delay)
}

// Carousel is the position of the single-item carousel.
type Carousel struct {
	Index int
	Count int
}

// NewCarousel returns a carousel over count slides positioned at index,
// clamped into range.
func NewCarousel(index, count int) Carousel {
	c := Carousel{Count: count}
	switch {
	case count <= 0 || index < 0:
		c.Index = 0
	case index >= count:
		c.Index = count - 1
	default:
		c.Index = index
	}
	return c
}

// HasPrev reports whether the previous button is enabled.
func (c Carousel) HasPrev() bool { return c.Index > 0 }

// HasNext reports whether the next button is enabled.
func (c Carousel) HasNext() bool { return c.Index < c.Count-1 }

// Next is the slide autoplay moves to. It wraps to the first slide after
// the last one.
func (c Carousel) Next() int {
	if c.Count == 0 || c.Index >= c.Count-1 {
		return 0
	}
	return c.Index + 1
}

// Prev is the slide before the current one, clamped at the first.
func (c Carousel) Prev() int {
	if c.Index <= 0 {
		return 0
	}
	return c.Index - 1
}
