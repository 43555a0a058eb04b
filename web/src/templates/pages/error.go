package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Error is the body of the page shown for failed requests.
func Error(status int, message string) g.Node {
	return h.Section(
		h.Class("error-page"),
		h.H1(g.Text(strconv.Itoa(status))),
		h.P(g.Text(message)),
		h.A(h.Href("/"), g.Text("Back to home")),
	)
}
