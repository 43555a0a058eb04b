package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/givefund/give/internal/middleware"
	"github.com/givefund/give/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central error handler. echo.HTTPErrors keep
// their status and message; anything else is logged with a stack trace and
// answered with a plain 500 page.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		var sb strings.Builder
		if rerr := pages.Error(code, message).Render(&sb); rerr != nil {
			_ = c.String(code, message)
			return
		}
		_ = c.HTML(code, sb.String())
	}
}
