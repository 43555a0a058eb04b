package events

import (
	"net/url"

	"github.com/givefund/give/internal/assets"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	modalTarget = "#event-modal"

	// OnImageError swaps a broken image for the placeholder. It clears itself
	// first, so a missing placeholder cannot trigger it again.
	OnImageError = "this.onerror=null;this.src='" + assets.PlaceholderPath + "';"

	shareIcon = `<svg class="share-icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 448 512" width="14" height="14" aria-hidden="true"><path fill="currentColor" d="M352 320c-22.6 0-43.4 7.8-59.8 20.9l-102.5-64.1a96.6 96.6 0 0 0 0-41.7l102.5-64.1C308.6 184.2 329.4 192 352 192c53 0 96-43 96-96S405 0 352 0s-96 43-96 96c0 7.2.8 14.1 2.3 20.8L155.8 180.9C139.4 167.8 118.6 160 96 160c-53 0-96 43-96 96s43 96 96 96c22.6 0 43.4-7.8 59.8-20.9l102.5 64.1A96.3 96.3 0 0 0 256 416c0 53 43 96 96 96s96-43 96-96-43-96-96-96z"/></svg>`
)

func modalURL(key string) string {
	return "/events/modal/" + url.PathEscape(key)
}

func calendarURL(slug string) string {
	return "/events/" + url.PathEscape(slug) + "/calendar.ics"
}

// Section is the landing page block. Its container loads the cards once
// the page is in the browser.
func Section() g.Node {
	return h.Section(
		h.Class("events-section"), h.ID("events"),
		h.H2(h.Class("section-title"), g.Text("Upcoming Events")),
		h.Div(
			h.Class("events-container"),
			hx.Get("/events/upcoming"),
			hx.Trigger("load"),
			hx.Swap("innerHTML"),
		),
		h.Div(h.ID("event-modal")),
	)
}

// Cards renders the card list fragment.
func Cards(cards []Card) g.Node {
	return g.Map(cards, CardView)
}

// CardView renders one event card. Only the description opens the modal.
func CardView(c Card) g.Node {
	return h.Div(
		h.Class("event-card"),
		h.Div(
			h.Class("event-date-col"),
			h.Span(h.Class("month-day"), g.Text(c.MonthDay)),
			h.Span(h.Class("year"), g.Text(c.Year)),
		),
		h.Div(
			h.Class("event-details-col"),
			h.P(h.Class("event-datetime"), g.Text(c.Weekday+" "+c.Time)),
			h.H3(h.Class("event-title"), g.Text(c.Title)),
			h.P(
				h.Class("description"),
				h.Style("cursor: pointer"),
				hx.Get(modalURL(c.Key())),
				hx.Target(modalTarget),
				hx.Swap("innerHTML"),
				g.Text(c.Excerpt),
			),
			g.If(c.HasImage, FallbackImage(c.ImageURL, c.Title, "event-image")),
			ShareButton(c),
		),
	)
}

// Modal renders the detail overlay. Clicking the backdrop or the close
// button empties the modal container; clicks inside the box do not.
func Modal(c Card) g.Node {
	return h.Div(
		h.Class("modal-overlay"),
		hx.Get("/events/modal"),
		hx.Trigger("click target:.modal-overlay"),
		hx.Target(modalTarget),
		hx.Swap("innerHTML"),
		h.Div(
			h.Class("modal-box"),
			h.Role("dialog"),
			h.Aria("modal", "true"),
			h.Button(
				h.Class("modal-close"),
				h.Type("button"),
				h.Aria("label", "Close"),
				hx.Get("/events/modal"),
				hx.Target(modalTarget),
				hx.Swap("innerHTML"),
				g.Text("×"),
			),
			h.Div(h.Class("modal-header"), FallbackImage(c.ImageURL, c.Title, "modal-image")),
			h.Div(
				h.Class("modal-body"),
				h.H2(g.Text(c.Title)),
				details(c),
			),
		),
	)
}

// DetailPage is the body of the page a shared link opens.
func DetailPage(c Card) g.Node {
	return h.Article(
		h.Class("events-section event-detail"),
		FallbackImage(c.ImageURL, c.Title, "modal-image"),
		h.H1(g.Text(c.Title)),
		details(c),
		ShareButton(c),
	)
}

func details(c Card) g.Node {
	return g.Group{
		h.P(h.Class(c.StatusClass), g.Text(c.Status)),
		h.P(h.Class("modal-description"), g.Text(c.Description)),
		h.Div(
			h.Class("modal-details"),
			detail("Date:", c.ModalDate),
			detail("Time:", c.Time),
			detail("Location:", c.Location),
		),
		g.If(c.HasDate() && c.Slug != "",
			h.A(h.Class("calendar-link"), h.Href(calendarURL(c.Slug)), g.Text("Add to calendar")),
		),
	}
}

func detail(label, value string) g.Node {
	return h.P(h.Strong(g.Text(label)), g.Text(" "+value))
}

// FallbackImage renders an <img> that falls back to the placeholder once.
func FallbackImage(src, alt, class string) g.Node {
	return h.Img(
		h.Src(src),
		h.Alt(alt),
		h.Class(class),
		g.Attr("onerror", OnImageError),
	)
}

// ShareButton carries what the browser needs to share or copy the link.
func ShareButton(c Card) g.Node {
	return h.Button(
		h.Class("share-button"),
		h.Type("button"),
		h.Data("share-title", c.Title),
		h.Data("share-text", c.Description),
		h.Data("share-url", c.ShareURL),
		g.Text("Share "),
		g.Raw(shareIcon),
	)
}
