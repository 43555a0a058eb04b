package layouts

import (
	"github.com/givefund/give/internal/assets"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Props configures the document shell.
type Props struct {
	Title       string
	Description string
	// ScrollTo is the id of an element the page scrolls to once loaded.
	ScrollTo string
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Give"
	}
	return "Give"
}

// Base wraps page content in the HTML document shared by every page.
func Base(p Props, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(p.Title))),
				g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
				h.Link(h.Rel("stylesheet"), h.Href(assets.StylesheetPath)),
				h.Script(h.Src(htmxSrc), h.Defer()),
				h.Script(h.Src(assets.ScriptPath), h.Defer()),
			),
			h.Body(
				g.If(p.ScrollTo != "", h.Data("scroll-to", p.ScrollTo)),
				h.Main(children...),
			),
		),
	)
}
