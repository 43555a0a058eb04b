package hero

import (
	"net/http"

	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/internal/view"
	"github.com/labstack/echo/v4"
)

// DonationAnchor is the element the home page scrolls to after "Donate Now".
const DonationAnchor = "DonationCard"

// Donate records where the home page should scroll and sends the visitor
// back to it. A session failure still redirects; the page just won't scroll.
func Donate(c echo.Context) error {
	if err := view.SetRouteState(c, view.StateScrollTo, DonationAnchor); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to store route state", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
