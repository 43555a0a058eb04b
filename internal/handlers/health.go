package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports that the process is serving. It does not check the public
// API; an unreachable API only empties the events section.
func Health(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}
}
