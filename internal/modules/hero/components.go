package hero

import (
	"github.com/givefund/give/internal/assets"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Link targets of the call-to-action buttons.
const (
	CausesPath    = "/causes"
	DonatePath    = "/donate"
	VolunteerPath = "/volunteer"
)

// Section renders the landing banner.
func Section() g.Node {
	return h.Section(
		h.Class("hero-section"),
		h.Div(
			h.Class("hero-content-wrapper"),
			h.Div(
				h.Class("hero-text-content"),
				h.H1(
					g.Text("Helping Each "), highlight("Other"), g.Text(" Can"),
					h.Br(),
					g.Text("Make World "), highlight("Better"),
				),
				h.P(g.Text("By working together and supporting each other, we can create a more compassionate and equitable society.")),
				h.Div(
					h.Class("hero-buttons"),
					button("btn primary", CausesPath, "View Our Causes"),
					button("btn secondary", DonatePath, "Donate Now"),
					button("btn outline", VolunteerPath, "Become a Volunteer"),
				),
			),
			h.Div(
				h.Class("hero-image-container"),
				h.Img(
					h.Src(assets.HeroImagePath),
					h.Alt("Donation jar with coins"),
					h.Class("hero-main-image"),
				),
			),
		),
	)
}

func highlight(text string) g.Node {
	return h.Span(h.Class("highlight-text"), g.Text(text))
}

func button(class, href, label string) g.Node {
	return h.A(h.Class(class), h.Href(href), g.Text(label))
}
