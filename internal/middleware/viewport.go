package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const viewportKey = "viewport_width"

// Client hint headers carrying the layout viewport width in CSS pixels.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportWidthLegacy = "Viewport-Width"
)

// Viewport asks browsers for the viewport width client hint and stores the
// width reported on the request, if any, for ViewportWidth.
func Viewport(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Add("Accept-CH", HeaderViewportWidth)
		c.Response().Header().Add(echo.HeaderVary, HeaderViewportWidth)

		for _, h := range []string{HeaderViewportWidth, HeaderViewportWidthLegacy} {
			if w, err := strconv.Atoi(c.Request().Header.Get(h)); err == nil && w > 0 {
				c.Set(viewportKey, w)
				break
			}
		}
		return next(c)
	}
}

// ViewportWidth returns the width recorded by Viewport, or 0 when the
// browser did not send one.
func ViewportWidth(c echo.Context) int {
	if w, ok := c.Get(viewportKey).(int); ok {
		return w
	}
	return 0
}
