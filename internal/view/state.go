package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const routeStateSession = "route-state"

// Route-state keys.
const (
	// StateScrollTo names the element the next page render scrolls to.
	StateScrollTo = "scrollTo"
)

// SetRouteState stores a value for the next page render, the server-side
// counterpart of navigating with history state.
func SetRouteState(c echo.Context, key, value string) error {
	sess, err := session.Get(routeStateSession, c)
	if err != nil {
		return err
	}
	sess.Values[key] = value
	return sess.Save(c.Request(), c.Response())
}

// PopRouteState returns the value stored under key and clears it, so the
// state applies to exactly one render. Missing state yields "".
func PopRouteState(c echo.Context, key string) string {
	sess, err := session.Get(routeStateSession, c)
	if err != nil {
		return ""
	}
	value, ok := sess.Values[key].(string)
	if !ok {
		return ""
	}
	delete(sess.Values, key)
	_ = sess.Save(c.Request(), c.Response())
	return value
}
